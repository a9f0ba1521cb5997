package pararoute

import "encoding/json"

// SerializedCall is the structured result of transfer construction: a pallet
// call with named arguments, ready to be encoded into an extrinsic or
// serialized for inspection. Building one performs no I/O.
type SerializedCall struct {
	Module     string                 `json:"module"`
	Section    string                 `json:"section"`
	Parameters map[string]interface{} `json:"parameters"`
}

// CallIndexName is the "Pallet.method" form used for metadata lookup.
func (c SerializedCall) CallIndexName() string {
	return c.Module + "." + c.Section
}

func (c SerializedCall) String() string {
	out, err := json.Marshal(c)
	if err != nil {
		return c.CallIndexName()
	}
	return string(out)
}
