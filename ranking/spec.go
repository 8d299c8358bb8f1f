package ranking

// =============================================================================
// Ordering Modes
// =============================================================================

// Caller-supplied ordering modes. Unknown modes fall back to the composite
// default for the entity kind, so callers can never produce an unorderable
// request.
const (
	ModeDefault       = ""
	ModeNewLive       = "newLive"
	ModeHighToLow     = "highToLow"
	ModeLowToHigh     = "lowToHigh"
	ModePopularity    = "popularity"
	ModeMostPlay      = "mostPlay"
	ModeNewPublish    = "newPublish"
	ModeGiftCount     = "giftCount"
	ModeGiftAmount    = "giftAmount"
	ModeLikes         = "likes"
	ModeComments      = "comments"
	ModeWatchDuration = "watchDuration"
)

// EntityKind selects which mode table applies.
type EntityKind int

const (
	KindRoom EntityKind = iota
	KindUser
	KindContributor
	KindVideo
)

// =============================================================================
// Ranking Spec
// =============================================================================

// Sort criterion fields beyond the plain metric names.
const (
	FieldTier            = "tier"
	FieldScore           = "composite_score"
	FieldPopularityScore = "popularity_score"
	FieldLatestBroadcast = "latest_broadcast_start"
	FieldCreatedAt       = "created_at"
	FieldID              = "id"
)

type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Criterion is one (field, direction) pair of an ordering instruction.
type Criterion struct {
	Field     string
	Direction Direction
}

// Spec is the resolved ordering instruction for one request, evaluated
// criterion by criterion. Every resolved Spec ends with an ascending id
// tie-break, so no two distinct entities ever compare equal.
type Spec []Criterion

// Resolve maps an ordering mode to the concrete Spec for the entity kind.
func Resolve(mode string, kind EntityKind) Spec {
	var spec Spec

	switch kind {
	case KindRoom:
		switch mode {
		case ModeNewLive:
			spec = Spec{{FieldLatestBroadcast, Descending}}
		default:
			// Live rooms first, then composite score, then most recent broadcast.
			spec = Spec{
				{FieldTier, Descending},
				{FieldScore, Descending},
				{FieldLatestBroadcast, Descending},
			}
		}
	case KindUser:
		switch mode {
		case ModeHighToLow:
			spec = Spec{{MetricFollowers, Descending}}
		case ModeLowToHigh:
			spec = Spec{{MetricFollowers, Ascending}}
		case ModePopularity:
			spec = Spec{{FieldPopularityScore, Descending}}
		default:
			spec = Spec{{FieldScore, Descending}}
		}
	case KindContributor:
		switch mode {
		case ModeGiftCount:
			spec = Spec{{MetricGiftCount, Descending}}
		case ModeGiftAmount:
			spec = Spec{{MetricGiftAmount, Descending}}
		case ModeLikes:
			spec = Spec{{MetricLikes, Descending}}
		case ModeComments:
			spec = Spec{{MetricComments, Descending}}
		case ModeWatchDuration:
			spec = Spec{{MetricWatchDuration, Descending}}
		default:
			spec = Spec{{FieldScore, Descending}}
		}
	case KindVideo:
		switch mode {
		case ModeMostPlay:
			spec = Spec{{MetricViews, Descending}}
		case ModeNewPublish:
			spec = Spec{{FieldCreatedAt, Descending}}
		default:
			spec = Spec{{FieldScore, Descending}}
		}
	}

	return append(spec, Criterion{FieldID, Ascending})
}
