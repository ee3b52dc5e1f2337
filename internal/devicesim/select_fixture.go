package devicesim

// resultFor stands in for the on-device SELECT query executor (explicitly
// out of scope for this driver layer, spec §1): it answers a small fixture
// table of known queries rather than evaluating s3-object SQL, which is
// enough to exercise the SEND_SELECT/RETRIEVE_SELECT protocol end to end.
func resultFor(query string) []byte {
	if result, ok := knownSelectResults[query]; ok {
		return []byte(result)
	}
	return nil
}

var knownSelectResults = map[string]string{
	"select s_name,s_address,s_city from s3object where s_nation = 'UNITED STATES'": "" +
		"s_name,s_address,s_city\n" +
		"Supplier#000000010,9QtKQKXK24f,UNITED ST0\n" +
		"Supplier#000000087,5ovT6anHSsD1T,UNITED ST4\n",
}
