package model

// L2Option is one second-level subcategory under an L1 group.
// Keywords are lowercased at load time; empty tokens are discarded.
type L2Option struct {
	Code        string
	Subcategory string
	Description string
	Keywords    []string
}

// L1Group is a top-level taxonomy category with its ordered L2 options.
// Option order follows taxonomy row order and is significant: scoring
// ties resolve to the first-seen option.
type L1Group struct {
	Code        string
	Category    string
	Description string
	L2Options   []L2Option
}
