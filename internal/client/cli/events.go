package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/lifeplan/lifeplan-cli/internal/client/events"
	"github.com/lifeplan/lifeplan-cli/internal/client/models"
	"github.com/lifeplan/lifeplan-cli/internal/common"
)

var sortKeys = map[string]events.SortKey{
	"date":     events.SortByDate,
	"title":    events.SortByTitle,
	"priority": events.SortByPriority,
	"passed":   events.SortByHasPassed,
}

// List fetches and prints the user's events. Optional arguments select
// the sort key (date, title, priority, passed) and order (asc, desc);
// the selection sticks for subsequent calls.
func (a *App) List(ctx context.Context, args []string) error {
	for _, arg := range args {
		switch l := strings.ToLower(arg); l {
		case "asc":
			a.sortDir = events.OrderAsc
		case "desc":
			a.sortDir = events.OrderDesc
		default:
			key, ok := sortKeys[l]
			if !ok {
				fmt.Fprintln(a.out, "Usage: list [date|title|priority|passed] [asc|desc]")
				return nil
			}
			a.sortKey = key
		}
	}

	evs, err := a.eventService.List(ctx, a.sortKey, a.sortDir)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			a.forceLogout(ctx)
			return nil
		}
		fmt.Fprintln(a.out, "error:", err.Error())
		return err
	}

	if len(evs) == 0 {
		fmt.Fprintln(a.out, "No events yet; use add to create one")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tDATE\tPRIORITY\tPASSED\tDESCRIPTION")
	for _, e := range evs {
		date := "-"
		if e.Date != nil {
			date = *e.Date
		}
		passed := ""
		if e.HasPassed {
			passed = "x"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", e.ID, e.Title, date, e.Priority, passed, e.Description)
	}
	return w.Flush()
}

// Add walks the user through the event form and creates the event.
func (a *App) Add(ctx context.Context) error {
	form := events.NewForm()
	if err := a.fillEventForm(form, nil); err != nil {
		return err
	}
	if err := form.Validate(); err != nil {
		fmt.Fprintln(a.out, "error:", err.Error())
		return nil
	}

	created, err := a.eventService.Create(ctx, form.Event())
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			a.forceLogout(ctx)
			return nil
		}
		fmt.Fprintln(a.out, "error:", err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Event created (id %d)\n", created.ID)
	return nil
}

// Edit re-fills the form for an existing event and replaces it
// wholesale on the server. The id comes from the command argument or an
// extra prompt.
func (a *App) Edit(ctx context.Context, args []string) error {
	var raw string
	if len(args) > 0 {
		raw = args[0]
	} else {
		v, err := getSimpleText(a.reader, "Enter event id", a.out)
		if err != nil {
			return err
		}
		raw = v
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id == 0 {
		fmt.Fprintln(a.out, "Usage: edit <id>")
		return nil
	}

	current, err := a.findEvent(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			a.forceLogout(ctx)
			return nil
		}
		fmt.Fprintln(a.out, "error:", err.Error())
		return err
	}
	if current == nil {
		fmt.Fprintf(a.out, "No event with id %d\n", id)
		return nil
	}

	form := events.NewForm()
	form.SeedFrom(*current)
	if err := a.fillEventForm(form, current); err != nil {
		return err
	}
	if err := form.Validate(); err != nil {
		fmt.Fprintln(a.out, "error:", err.Error())
		return nil
	}

	if _, err := a.eventService.Update(ctx, form.Event()); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			a.forceLogout(ctx)
			return nil
		}
		fmt.Fprintln(a.out, "error:", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Event updated")
	return nil
}

func (a *App) findEvent(ctx context.Context, id int64) (*models.Event, error) {
	evs, err := a.eventService.List(ctx, a.sortKey, a.sortDir)
	if err != nil {
		return nil, err
	}
	for i := range evs {
		if evs[i].ID == id {
			return &evs[i], nil
		}
	}
	return nil, nil
}

// fillEventForm prompts for each form field. When editing, the current
// value is shown and an empty answer keeps it. The passed question only
// appears once the entered moment is not in the future.
func (a *App) fillEventForm(form *events.Form, current *models.Event) error {
	title, err := a.promptField("Enter title", form.Title)
	if err != nil {
		return err
	}
	form.Title = title

	description, err := a.promptField("Enter description", form.Description)
	if err != nil {
		return err
	}
	form.Description = description

	date, err := a.promptField("Enter date (YYYY-MM-DD, empty for none)", form.Date())
	if err != nil {
		return err
	}
	form.SetDate(date)

	if form.Date() != "" {
		t, err := a.promptField("Enter time (HH:MM)", form.Time())
		if err != nil {
			return err
		}
		form.SetTime(t)
	}

	priority, err := a.promptField("Enter priority (LOW, MEDIUM, HIGH)", string(form.Priority))
	if err != nil {
		return err
	}
	form.Priority = models.Priority(strings.ToUpper(priority))

	if form.HasPassedEditable() {
		answer, err := getSimpleText(a.reader, "Already done? (y/n)", a.out)
		if err != nil {
			return err
		}
		form.SetHasPassed(strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes"))
	}
	return nil
}

func (a *App) promptField(label, current string) (string, error) {
	if current != "" {
		label = fmt.Sprintf("%s [%s]", label, current)
	}
	v, err := getSimpleText(a.reader, label, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}
