package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskboard/pkg/usecase"
)

func TestErrors_SentinelErrors(t *testing.T) {
	gt.Value(t, usecase.ErrRepositoryUnavailable).NotNil()
}
