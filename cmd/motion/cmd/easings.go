package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-drift/motion/pkg/animation"
)

func init() {
	RegisterCommand(&Command{
		Name:  "easings",
		Short: "List easing tags and sample their curves",
		Long: `List every easing tag with the eased progress at 0, 0.25, 0.5, 0.75
and 1.

Tags are accepted anywhere an easing is configured: motion.yaml defaults,
scenario tweens and transition initializers. Pass tags to sample only those;
cubic-bezier(x1,y1,x2,y2) curves are accepted too.`,
		Usage: "motion easings [tag...]",
		Run:   runEasings,
	})
}

var easingSamples = []float64{0, 0.25, 0.5, 0.75, 1}

func runEasings(args []string) error {
	tags := args
	if len(tags) == 0 {
		tags = animation.EasingTags()
	}
	width := 0
	for _, tag := range tags {
		width = max(width, len(tag))
	}
	for _, tag := range tags {
		e, err := animation.ParseEasing(tag)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%-*s", width, e.Tag())
		for _, u := range easingSamples {
			fmt.Fprintf(stdout, "  %7s", strconv.FormatFloat(e.Ease(u), 'f', 4, 64))
		}
		fmt.Fprintln(stdout)
	}
	return nil
}
