package browser

import (
	"context"
	"fmt"
	"strconv"

	"meckano-helper/internal/report/repository"
)

var _ repository.PageRepository = (*Client)(nil)

func (c *Client) TriggerPresent(ctx context.Context) (bool, error) {
	return c.present(ctx, selTrigger)
}

func (c *Client) ActivateTrigger(ctx context.Context) error {
	return c.click(ctx, selTrigger)
}

func (c *Client) DialogPresent(ctx context.Context) (bool, error) {
	return c.present(ctx, selDialog)
}

// DialogVisible follows the host's own convention: the dialog is open when
// its inline display is "block", or its computed display is anything but
// "none".
func (c *Client) DialogVisible(ctx context.Context) (bool, error) {
	return c.displayed(ctx, selDialog)
}

func (c *Client) AttendanceViewPresent(ctx context.Context) (bool, error) {
	return c.present(ctx, selAttendanceView)
}

func (c *Client) AttendanceViewVisible(ctx context.Context) (bool, error) {
	return c.displayed(ctx, selAttendanceView)
}

func (c *Client) RowTablePresent(ctx context.Context) (bool, error) {
	return c.present(ctx, selHoursTable)
}

func (c *Client) TimeInputCount(ctx context.Context) (int, error) {
	var count int
	expr := fmt.Sprintf(`document.querySelectorAll(%s).length`, strconv.Quote(selTimeInputs))
	if err := c.eval(ctx, expr, &count); err != nil {
		return 0, err
	}
	return count, nil
}

func (c *Client) SubmitPresent(ctx context.Context) (bool, error) {
	return c.present(ctx, selSubmit)
}

func (c *Client) SubmitEnabled(ctx context.Context) (bool, error) {
	var enabled bool
	expr := fmt.Sprintf(`(() => {
		const el = document.querySelector(%s);
		if (!el) return false;
		if (el.disabled) return false;
		return !el.classList.contains('disabled');
	})()`, strconv.Quote(selSubmit))
	if err := c.eval(ctx, expr, &enabled); err != nil {
		return false, err
	}
	return enabled, nil
}

func (c *Client) ActivateSubmit(ctx context.Context) error {
	return c.click(ctx, selSubmit)
}

func (c *Client) Rows(ctx context.Context) ([]repository.RowSnapshot, error) {
	var rows []repository.RowSnapshot
	expr := fmt.Sprintf(`(() => {
		const table = document.querySelector(%s);
		if (!table) return [];
		const rows = Array.from(table.querySelectorAll('tr')).slice(1);
		return rows.map((tr, i) => {
			const dateEl = tr.querySelector('td.date .dateText');
			const specialEl = tr.querySelector('.specialDayDescription');
			const absenceEl = tr.querySelector('td.missing select.select-box');
			const inEl = tr.querySelector('input.checkIn');
			const outEl = tr.querySelector('input.checkOut');
			return {
				index: i,
				dateText: dateEl ? dateEl.textContent.trim() : '',
				specialDay: specialEl ? specialEl.textContent.trim() : '',
				absenceCode: absenceEl ? absenceEl.value : '0',
				checkIn: inEl ? inEl.value.trim() : '',
				checkOut: outEl ? outEl.value.trim() : '',
			};
		});
	})()`, strconv.Quote(selHoursTable))
	if err := c.eval(ctx, expr, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// WriteField sets a time input's value and dispatches change and keyup so
// the host's validation and totals listeners observe the edit, the same
// events a manual keyboard entry would produce.
func (c *Client) WriteField(ctx context.Context, rowIndex int, field repository.Field, value string) error {
	var ok bool
	expr := fmt.Sprintf(`(() => {
		const table = document.querySelector(%s);
		if (!table) return false;
		const rows = Array.from(table.querySelectorAll('tr')).slice(1);
		const tr = rows[%d];
		if (!tr) return false;
		const input = tr.querySelector('input.%s');
		if (!input) return false;
		input.value = %s;
		input.dispatchEvent(new Event('change', {bubbles: true}));
		input.dispatchEvent(new Event('keyup', {bubbles: true}));
		return true;
	})()`, strconv.Quote(selHoursTable), rowIndex, field, strconv.Quote(value))
	if err := c.eval(ctx, expr, &ok); err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("row %d has no writable %s input", rowIndex, field)
	}
	return nil
}

func (c *Client) present(ctx context.Context, selector string) (bool, error) {
	var found bool
	expr := fmt.Sprintf(`!!document.querySelector(%s)`, strconv.Quote(selector))
	if err := c.eval(ctx, expr, &found); err != nil {
		return false, err
	}
	return found, nil
}

func (c *Client) displayed(ctx context.Context, selector string) (bool, error) {
	var visible bool
	expr := fmt.Sprintf(`(() => {
		const el = document.querySelector(%s);
		if (!el) return false;
		if (el.style.display === 'block') return true;
		return window.getComputedStyle(el).display !== 'none';
	})()`, strconv.Quote(selector))
	if err := c.eval(ctx, expr, &visible); err != nil {
		return false, err
	}
	return visible, nil
}

func (c *Client) click(ctx context.Context, selector string) error {
	var clicked bool
	expr := fmt.Sprintf(`(() => {
		const el = document.querySelector(%s);
		if (!el) return false;
		el.click();
		return true;
	})()`, strconv.Quote(selector))
	if err := c.eval(ctx, expr, &clicked); err != nil {
		return err
	}
	if !clicked {
		return fmt.Errorf("element %q not found", selector)
	}
	return nil
}
