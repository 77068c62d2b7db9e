package gvf

import "github.com/maseology/mmio"

// WriteProfileCSV writes a profile to a two-column csv with header "x,y"
// (distance from the control [m], flow depth [m]); column names are fixed
// for downstream consumers. The destination path is the caller's to choose.
func WriteProfileCSV(fp string, smpls []DepthSample) {
	csvw := mmio.NewCSVwriter(fp)
	defer csvw.Close()
	csvw.WriteHead("x,y")
	for _, s := range smpls {
		csvw.WriteLine(s.X, s.Y)
	}
}
