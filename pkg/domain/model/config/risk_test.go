package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskboard/pkg/domain/model/config"
	"github.com/secmon-lab/riskboard/pkg/domain/types"
)

func TestDefaultRiskConfig(t *testing.T) {
	cfg := config.DefaultRiskConfig()
	gt.A(t, cfg.Likelihood).Length(5)
	gt.A(t, cfg.Impact).Length(5)

	gt.V(t, cfg.LikelihoodLevel(1).Name).Equal("Very Unlikely")
	gt.V(t, cfg.LikelihoodLevel(5).Name).Equal("Very Likely")
	gt.V(t, cfg.ImpactLevel(1).Name).Equal("Negligible")
	gt.V(t, cfg.ImpactLevel(5).Name).Equal("Severe")
}

func TestRiskConfig_FallbackToDefault(t *testing.T) {
	cfg := &config.RiskConfig{
		Likelihood: []config.LikelihoodLevel{
			{Score: 3, Name: "Even odds"},
		},
	}

	gt.V(t, cfg.LikelihoodLevel(3).Name).Equal("Even odds")
	gt.V(t, cfg.LikelihoodLevel(4).Name).Equal("Likely")
	gt.V(t, cfg.ImpactLevel(types.Impact(2)).Name).Equal("Minor")

	var nilCfg *config.RiskConfig
	gt.V(t, nilCfg.ImpactLevel(4).Name).Equal("Major")
}

func TestDefaultRiskConfig_IsCopy(t *testing.T) {
	cfg := config.DefaultRiskConfig()
	cfg.Likelihood[0].Name = "changed"

	gt.V(t, config.DefaultRiskConfig().LikelihoodLevel(1).Name).Equal("Very Unlikely")
}
