package style

// Run is a maximal span [Start, End) of characters sharing one Metadata.
type Run struct {
	Metadata Metadata
	Start    int
	End      int
}

// Len is the number of characters in the run.
func (r Run) Len() int { return r.End - r.Start }

// Contains reports whether the character index i falls inside the run.
func (r Run) Contains(i int) bool { return i >= r.Start && i < r.End }

// Compress folds a per-character style sequence into maximal runs of equal
// adjacent metadata. Runs are ordered, contiguous and cover [0, len(styles)).
// An empty input yields an empty, non-nil slice.
func Compress(styles []Metadata) []Run {
	runs := make([]Run, 0, 4)
	if len(styles) == 0 {
		return runs
	}

	start := 0
	current := styles[0]
	for i := 1; i < len(styles); i++ {
		if styles[i].Equal(current) {
			continue
		}
		runs = append(runs, Run{Metadata: current, Start: start, End: i})
		start = i
		current = styles[i]
	}
	// the last run has no successor to close it
	runs = append(runs, Run{Metadata: current, Start: start, End: len(styles)})
	return runs
}

// Expand turns runs back into one Metadata per character.
func Expand(runs []Run) []Metadata {
	if len(runs) == 0 {
		return []Metadata{}
	}
	out := make([]Metadata, 0, runs[len(runs)-1].End)
	for _, r := range runs {
		for i := r.Start; i < r.End; i++ {
			out = append(out, r.Metadata)
		}
	}
	return out
}

// Attribute is a run exported with inclusive index bounds [first, last].
type Attribute struct {
	Metadata Metadata `json:"style" toml:"-"`
	Flags    []string `json:"-" toml:"flags"`
	Range    [2]int   `json:"ranges" toml:"range"`
}

// Attributes returns the run decomposition of styles with inclusive bounds,
// the form used for export independent of rendering.
func Attributes(styles []Metadata) []Attribute {
	runs := Compress(styles)
	out := make([]Attribute, len(runs))
	for i, r := range runs {
		out[i] = Attribute{
			Metadata: r.Metadata,
			Flags:    r.Metadata.Names(),
			Range:    [2]int{r.Start, r.End - 1},
		}
	}
	return out
}

// Names lists the set flag names. Empty for default metadata.
func (m Metadata) Names() []string {
	names := []string{}
	for _, fn := range flagNames {
		if m.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return names
}
