package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskboard/pkg/domain/model"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
	"github.com/secmon-lab/riskboard/pkg/repository/memory"
	"github.com/secmon-lab/riskboard/pkg/usecase"
	"github.com/secmon-lab/riskboard/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdAssess() *cli.Command {
	var likelihood int
	var impact int

	return &cli.Command{
		Name:  "assess",
		Usage: "Score a likelihood/impact pair without recording it",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "likelihood",
				Usage:       "Likelihood rating (1-5)",
				Required:    true,
				Destination: &likelihood,
			},
			&cli.IntFlag{
				Name:        "impact",
				Usage:       "Impact rating (1-5)",
				Required:    true,
				Destination: &impact,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc := usecase.New(memory.New())
			assessment, err := uc.Risk.Assess(types.Likelihood(likelihood), types.Impact(impact))
			if err != nil {
				if msg, ok := model.ValidationMessage(err); ok {
					return goerr.Wrap(err, msg)
				}
				return err
			}

			safe.Write(ctx, os.Stdout, renderAssessment(assessment))
			return nil
		},
	}
}

func renderAssessment(a *model.Assessment) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Score:          %d (likelihood %d x impact %d)\n", a.Score, a.Likelihood, a.Impact)
	fmt.Fprintf(&buf, "Classification: %s\n", a.Classification)
	fmt.Fprintf(&buf, "Guidance:       %s\n", a.Guidance)
	return buf.Bytes()
}
