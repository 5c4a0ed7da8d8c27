package options

import (
	"github.com/spf13/cobra"
)

// TrackOptions captures the pre-block flags shared by track start and
// track log.
type TrackOptions struct {
	Category string
	Flow     int
	Emotion  string
}

// AddTrackArgs wires timer-related flags on the provided command.
func AddTrackArgs(cmd *cobra.Command, o *TrackOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "Working",
		"Deep-work category for the block.")
	cmd.Flags().IntVar(&o.Flow, "flow", 3,
		"Flow rating before the block, 1 to 5.")
	cmd.Flags().StringVar(&o.Emotion, "emotion", "",
		"Emotion before the block.")
}
