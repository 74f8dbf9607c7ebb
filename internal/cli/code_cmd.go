package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

func newCodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "code HHmm [HHmm...]",
		Short: "Decode 4-digit time codes into decimal hours and 12-hour clock",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, code := range args {
				decimal, err := types.ToDecimalHour(code)
				if err != nil {
					return err
				}
				clock, err := types.FormatClock12h(code)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s  %6.3f  %s\n", code, decimal, clock)
			}
			return nil
		},
	}
}
