package polyvis

// StoreOptions configures a call to Store. The zero value performs no
// structural validation, matching spec.md's default (validate=false).
type StoreOptions struct {
	Validate bool
}

// StoreOption is a functional option for Store, following the
// Option func(*Options) convention used throughout katalvlaran/lvlath
// (e.g. dijkstra.WithReturnPath) rather than a bare bool parameter, so the
// signature can grow further options without breaking callers.
type StoreOption func(*StoreOptions)

// WithValidation makes Store reject malformed polygons (fewer than three
// vertices, self-intersecting, or wrongly wound) with ErrBadPolygon instead
// of silently accepting them.
func WithValidation() StoreOption {
	return func(o *StoreOptions) {
		o.Validate = true
	}
}
