package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/fixtures"
	"github.com/m04kA/SMC-ScheduleService/internal/layout"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type renderOptions struct {
	fixturesPath  string
	owner         string
	date          string
	from          int
	to            int
	pixelsPerHour float64
}

func newRenderCmd() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Lay out one staff row from a fixtures file and print every slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			schedule, err := fixtures.Load(opts.fixturesPath)
			if err != nil {
				return err
			}

			query, err := opts.query(schedule)
			if err != nil {
				return err
			}

			// Затенение только когда известны мастер и день недели
			var hours *domain.WorkingHours
			minHour, maxHour := domain.MinVisibleHour, domain.MaxVisibleHour
			member, known := schedule.StaffByOwner(query.OwnerKey)
			if known && query.Date != nil {
				wh, _ := member.HoursOn(query.Date.Weekday())
				hours = &wh
				minHour, maxHour = layout.VisibleHourRange([]domain.WorkingHours{wh})
			}
			if cmd.Flags().Changed("from") {
				minHour = opts.from
			}
			if cmd.Flags().Changed("to") {
				maxHour = opts.to
			}

			slots, err := layout.Slots(minHour, maxHour)
			if err != nil {
				return err
			}

			log, err := logger.NewWithWriter(cmd.ErrOrStderr(), "warn")
			if err != nil {
				return err
			}
			layoutOpts := layout.Options{
				PixelsPerHour: opts.pixelsPerHour,
				OnInvalid: func(item domain.ScheduleItem, err error) {
					log.Warn("skipped %s: %v", item.ID, err)
				},
			}
			rowItems := make([]domain.ScheduleItem, 0, len(schedule.Items))
			for _, item := range schedule.Items {
				if query.Matches(item) {
					rowItems = append(rowItems, item)
				}
			}
			items := layout.FilterValid(rowItems, layoutOpts.OnInvalid)
			layoutOpts.OnInvalid = nil

			out := cmd.OutOrStdout()
			printHeader(out, member, known, query)
			for _, slot := range slots {
				blocks := layout.LayoutSlot(items, query, slot.Start, layoutOpts)
				var shaded []domain.ShadedRange
				if hours != nil {
					shaded = layout.NonWorkingRanges(*hours, slot, layoutOpts.PixelsPerHour)
				}
				printSlot(out, slot, blocks, shaded)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.fixturesPath, "fixtures", "fixtures/demo.yaml", "Path to a YAML fixtures file")
	cmd.Flags().StringVar(&opts.owner, "owner", "", "Owner key of the row to render (staff id)")
	cmd.Flags().StringVar(&opts.date, "date", "", "Date to render, YYYY-MM-DD (defaults to the fixtures date)")
	cmd.Flags().IntVar(&opts.from, "from", domain.MinVisibleHour, "First visible hour, 0-23")
	cmd.Flags().IntVar(&opts.to, "to", domain.MaxVisibleHour, "Last visible hour, 0-23")
	cmd.Flags().Float64Var(&opts.pixelsPerHour, "pph", domain.DefaultPixelsPerHour, "Pixels per hour")

	return cmd
}

// query строка для отрисовки: владелец из флага или единственный мастер фикстур
func (o renderOptions) query(schedule *fixtures.Schedule) (layout.Query, error) {
	query := layout.Query{OwnerKey: o.owner}
	if query.OwnerKey == "" {
		if len(schedule.Staff) != 1 {
			return query, fmt.Errorf("--owner is required when fixtures contain %d staff members", len(schedule.Staff))
		}
		query.OwnerKey = domain.OwnerKey(schedule.Staff[0].ID)
	}

	switch {
	case o.date != "":
		date, err := time.Parse(domain.DateFormat, o.date)
		if err != nil {
			return query, fmt.Errorf("invalid --date %q: %w", o.date, err)
		}
		query.Date = &date
	case schedule.Date != nil:
		date := *schedule.Date
		query.Date = &date
	}

	return query, nil
}

func printHeader(out io.Writer, member fixtures.Staff, known bool, query layout.Query) {
	name := query.OwnerKey
	if known {
		name = fmt.Sprintf("%s (%s)", member.Name, query.OwnerKey)
	}
	date := "any date"
	if query.Date != nil {
		date = query.Date.Format(domain.DateFormat)
	}
	fmt.Fprintf(out, "%s, %s\n", name, date)
}

func printSlot(out io.Writer, slot domain.TimeSlot, blocks []domain.LayoutBlock, shaded []domain.ShadedRange) {
	fmt.Fprintf(out, "%6s", slot.Label)
	if len(shaded) > 0 {
		parts := make([]string, len(shaded))
		for i, s := range shaded {
			parts[i] = fmt.Sprintf("%.1f+%.1f", s.LeftPixelOffset, s.WidthPixels)
		}
		fmt.Fprintf(out, "  off %s", strings.Join(parts, " "))
	}
	fmt.Fprintln(out)

	for _, b := range blocks {
		fmt.Fprintf(out, "        col %d  left %7.1f  width %6.1f  size %6.1f  %s-%s %s [%s]\n",
			b.ColumnIndex, b.LeftPixelOffset, b.WidthPixels, b.SizePixels,
			b.Item.Start.Clock12h(), b.Item.End.Clock12h(), b.Item.Title, b.Item.ID)
	}
}
