package cli

var (
	RenderMatrix     = renderMatrix
	RenderAssessment = renderAssessment
	GetIndexConfig   = getIndexConfig
)
