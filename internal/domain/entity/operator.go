package entity

// Operator identifies the signed-in dashboard operator.
type Operator struct {
	Station string `json:"station"`
	HeadACP string `json:"headACP"`
}

// ResolverName is the identity written into resolvedBy fields.
func (o Operator) ResolverName() string {
	if o.HeadACP != "" {
		return o.HeadACP
	}

	return DefaultResolvedBy
}

// StationName is the identity written into resolvedStation fields.
func (o Operator) StationName() string {
	if o.Station != "" {
		return o.Station
	}

	return DefaultUnknownField
}
