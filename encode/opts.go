package encode

type EncodeOption func(*EncState)

// EncodeEscaped switches string output to backslash-escaped form via
// token.Quote. Off by default: canonical text emits string contents
// verbatim.
func EncodeEscaped(v bool) EncodeOption {
	return func(es *EncState) { es.escaped = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
