package entity

// Firestation maps a fire-station number to one street address it covers.
// Identity is the (Station, Address) pair; one address may legitimately be
// covered by several stations, each as its own mapping.
type Firestation struct {
	Station int64  `json:"station"`
	Address string `json:"address"`
}

// Matches reports whether the mapping carries the given identity pair.
func (f Firestation) Matches(station int64, address string) bool {
	return f.Station == station && f.Address == address
}
