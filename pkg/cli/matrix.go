package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/cli/config"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
	"github.com/secmon-lab/riskboard/pkg/repository/memory"
	"github.com/secmon-lab/riskboard/pkg/usecase"
	"github.com/secmon-lab/riskboard/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdMatrix() *cli.Command {
	var levelsCfg config.Levels
	var noColor bool

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colored output",
			Sources:     cli.EnvVars("NO_COLOR"),
			Destination: &noColor,
		},
	}
	flags = append(flags, levelsCfg.Flags()...)

	return &cli.Command{
		Name:  "matrix",
		Usage: "Print the 5x5 risk matrix",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			riskCfg, err := levelsCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load levels config")
			}

			uc := usecase.New(memory.New(), usecase.WithRiskConfig(riskCfg))
			safe.Write(ctx, os.Stdout, renderMatrix(uc.Risk.Matrix(), !noColor))
			return nil
		},
	}
}

func classificationColor(c types.Classification, enabled bool) *color.Color {
	var clr *color.Color
	switch c {
	case types.ClassificationCritical:
		clr = color.New(color.BgRed, color.FgWhite, color.Bold)
	case types.ClassificationHigh:
		clr = color.New(color.BgHiRed, color.FgBlack)
	case types.ClassificationMedium:
		clr = color.New(color.BgYellow, color.FgBlack)
	default:
		clr = color.New(color.BgGreen, color.FgBlack)
	}

	if enabled {
		clr.EnableColor()
	} else {
		clr.DisableColor()
	}
	return clr
}

func renderMatrix(m *usecase.RiskMatrix, colored bool) []byte {
	var buf bytes.Buffer
	impacts := len(m.Impact)

	fmt.Fprintf(&buf, "%-16s", "Likelihood")
	for _, level := range m.Impact {
		fmt.Fprintf(&buf, " %-12s", level.Name)
	}
	buf.WriteString("\n")

	for row, level := range m.Likelihood {
		fmt.Fprintf(&buf, "%d %-14s", level.Score, level.Name)
		for col := 0; col < impacts; col++ {
			cell := m.Cells[row*impacts+col]
			label := fmt.Sprintf(" %2d %s ", cell.Score, cell.Classification.Initial())
			buf.WriteString(" ")
			buf.WriteString(classificationColor(cell.Classification, colored).Sprint(label))
			fmt.Fprintf(&buf, "%*s", 12-len(label), "")
		}
		buf.WriteString("\n")
	}

	buf.WriteString("\n")
	writeLegend(&buf, m.Legend, colored)
	return buf.Bytes()
}

func writeLegend(w io.Writer, legend []usecase.LegendEntry, colored bool) {
	for _, entry := range legend {
		name := classificationColor(entry.Classification, colored).Sprintf(" %-8s ", entry.Classification)
		_, _ = fmt.Fprintf(w, "%s %2d-%-2d %s\n", name, entry.MinScore, entry.MaxScore, entry.Guidance)
	}
}
