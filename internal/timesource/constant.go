package timesource

// DefaultJitterMinutes bounds the humanized offset: each endpoint moves by
// a uniform integer in [-DefaultJitterMinutes, +DefaultJitterMinutes].
const DefaultJitterMinutes = 20
