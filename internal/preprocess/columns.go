package preprocess

import "github.com/GriffinCanCode/domainprep/internal/dataset"

// Column names read or written by the preprocessor.
const (
	ColAnalystResult       = "analystResult"
	ColPrivateRegistration = "privateRegistrationStatus"
	ColRegistrantCountry   = "registrantContactCountry"
	ColDomainAge           = "domainAge"
)

// DefaultPositiveCountry is the registrant country encoded as 1.
const DefaultPositiveCountry = "UNITED STATES"

// DroppedColumns are the traffic and usage-rank features removed up front.
var DroppedColumns = []string{
	"historyDataScore",
	"medianLoadTime",
	"speedPercentile",
	"trafficDataReachRank",
	"reachPerMillionValue",
	"pageViewsRankValue",
	"pageViewsPerMillionValue",
	"usageStatisticRankValue",
	"reachRankValue",
	"BellonaStatus",
	"trafficDataRank",
}

// InputSchema is checked before any step runs.
var InputSchema = buildInputSchema()

func buildInputSchema() dataset.Schema {
	schema := make(dataset.Schema, 0, len(DroppedColumns)+4)
	for _, name := range DroppedColumns {
		schema = append(schema, dataset.Field{Name: name, Kind: dataset.KindAny})
	}
	return append(schema,
		dataset.Field{Name: ColAnalystResult, Kind: dataset.KindString},
		dataset.Field{Name: ColPrivateRegistration, Kind: dataset.KindAny},
		dataset.Field{Name: ColRegistrantCountry, Kind: dataset.KindAny},
		dataset.Field{Name: ColDomainAge, Kind: dataset.KindNumber},
	)
}

// analystLabels maps raw analyst strings to class labels. Values with a
// trailing space come from the source export.
var analystLabels = map[string]int{
	"TRUE":   1,
	"FALSE":  0,
	"TRUE ":  1,
	"FALSE ": 0,
}
