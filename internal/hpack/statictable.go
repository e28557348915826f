package hpack

// staticTableSize is the fixed entry count RFC 7541 Appendix A defines.
// Combined indices 1..staticTableSize address this table; the dynamic
// table takes over at staticTableSize+1.
const staticTableSize = 61

// staticTable holds the 61 well-known header pairs, 1-indexed to match the
// wire's combined index space (staticTable[0] is index 1, index 0 is
// never valid). Regenerate with tools/statictable from a fresh RFC 7541
// Appendix A dump if this ever needs to change.
var staticTable = [staticTableSize]HeaderField{
	{":authority", ""},
	{":method", "GET"},
	{":method", "POST"},
	{":path", "/"},
	{":path", "/index.html"},
	{":scheme", "http"},
	{":scheme", "https"},
	{":status", "200"},
	{":status", "204"},
	{":status", "206"},
	{":status", "304"},
	{":status", "400"},
	{":status", "404"},
	{":status", "500"},
	{"accept-charset", ""},
	{"accept-encoding", "gzip, deflate"},
	{"accept-language", ""},
	{"accept-ranges", ""},
	{"accept", ""},
	{"access-control-allow-origin", ""},
	{"age", ""},
	{"allow", ""},
	{"authorization", ""},
	{"cache-control", ""},
	{"content-disposition", ""},
	{"content-encoding", ""},
	{"content-language", ""},
	{"content-length", ""},
	{"content-location", ""},
	{"content-range", ""},
	{"content-type", ""},
	{"cookie", ""},
	{"date", ""},
	{"etag", ""},
	{"expect", ""},
	{"expires", ""},
	{"from", ""},
	{"host", ""},
	{"if-match", ""},
	{"if-modified-since", ""},
	{"if-none-match", ""},
	{"if-range", ""},
	{"if-unmodified-since", ""},
	{"last-modified", ""},
	{"link", ""},
	{"location", ""},
	{"max-forwards", ""},
	{"proxy-authenticate", ""},
	{"proxy-authorization", ""},
	{"range", ""},
	{"referer", ""},
	{"refresh", ""},
	{"retry-after", ""},
	{"server", ""},
	{"set-cookie", ""},
	{"strict-transport-security", ""},
	{"transfer-encoding", ""},
	{"user-agent", ""},
	{"vary", ""},
	{"via", ""},
	{"www-authenticate", ""},
}

// staticNameValueIndex maps every static (name, value) pair to its 1-based
// static index, including the entries whose value is empty, so an exact
// match (e.g. ":method" = "GET") can be referenced directly.
var staticNameValueIndex = map[HeaderField]int{}

// staticNameIndex maps a name to the lowest static index carrying that
// name, for the name-only lookup used by representation #2.
var staticNameIndex = map[string]int{}

func init() {
	for i, f := range staticTable {
		index := i + 1
		staticNameValueIndex[f] = index
		if _, ok := staticNameIndex[f.Name]; !ok {
			staticNameIndex[f.Name] = index
		}
	}
}

// statusStaticIndex is the hard-coded fast path for the seven well-known
// ":status" values RFC 7541 Appendix A carries in the static table.
var statusStaticIndex = map[int]int{
	200: 8,
	204: 9,
	206: 10,
	304: 11,
	400: 12,
	404: 13,
	500: 14,
}

// lookupStatic resolves a (name, value) pair against the static table,
// returning the combined index for an exact match and/or the lowest
// index carrying a name-only match. Either may be zero meaning "absent".
func lookupStatic(name, value string) (exact, nameOnly int) {
	if idx, ok := staticNameValueIndex[HeaderField{name, value}]; ok {
		exact = idx
	}
	if idx, ok := staticNameIndex[name]; ok {
		nameOnly = idx
	}
	return exact, nameOnly
}
