package network

import "strconv"

// Option configures a Network at construction time. Mirrors
// katalvlaran/lvlath/core's GraphOption / matrix's functional Option shape:
// exported constructors return an Option closure, and New applies them in
// order before validating the assembled value.
type Option func(*options)

type options struct {
	cm     []bool // flat n*n connectivity matrix; nil means "fully connected"
	labels []string
}

// WithConnectivity supplies an explicit connectivity matrix: cm[i*n+j]
// reports whether node i can influence node j. If omitted, New defaults to
// a fully connected network (every node can influence every node,
// including itself), matching the conventional IIT default of "no
// structural constraints beyond the TPM itself."
func WithConnectivity(cm []bool) Option {
	return func(o *options) { o.cm = cm }
}

// WithLabels supplies human-readable node labels (e.g. "A", "B", "C").
// Defaults to "n0", "n1", ... when omitted.
func WithLabels(labels []string) Option {
	return func(o *options) { o.labels = labels }
}

func gatherOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

func defaultLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = "n" + strconv.Itoa(i)
	}

	return labels
}
