package round

// Grid construction limits
const (
	// MaxFillerCopies caps how often any non-winning label may appear on a
	// card. Two copies can never be mistaken for a winning triple.
	MaxFillerCopies = 2

	// maxDrawRetries bounds random pool draws per cell before falling back
	// to a deterministic scan. Keeps grid construction loop-free even for
	// degenerate prize catalogs.
	maxDrawRetries = 32
)

// GenericFillers are the non-prize symbols used to pad the grid. Six
// distinct labels guarantee a 9-cell card can always be filled under the
// per-label cap, whatever the prize catalog looks like.
var GenericFillers = []string{
	"TREVO",
	"FERRADURA",
	"MOEDA",
	"ESTRELA",
	"SINO",
	"ARCO-IRIS",
}
