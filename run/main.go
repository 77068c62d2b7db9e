package main

import (
	"fmt"
	"log"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/gvf"
	"github.com/maseology/gvf/section"
	"github.com/maseology/mmio"
)

func main() {

	const (
		q     = 10.  // discharge [m³/s]
		b     = 3.   // bottom width [m]
		n     = .03  // Manning roughness
		s0    = .001 // bed slope
		dx    = 1.   // step [m]
		reach = 100. // reach length [m]
		cb    = 1.7  // broad-crested weir coefficient
		nsmpl = 250  // uncertainty-screen sample count
		outfp = "profile.csv"
	)

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap("\nRun complete")

	xs := section.WideRectangular{B: b}
	fp := gvf.NewFlowParameters(q, n, s0)

	p, err := gvf.Compute(xs, fp, gvf.Config{Dx: dx, Length: reach, Direction: gvf.Forward})
	if err != nil {
		log.Fatalf(" gvf.Compute failed: %v", err)
	}
	qw, err := gvf.WeirDischarge(gvf.BroadCrested, xs, p.Yc, cb, fp.G)
	if err != nil {
		log.Fatalf(" gvf.WeirDischarge failed: %v", err)
	}
	fmt.Printf(" critical depth:\t%.3f m\n normal depth:\t%.3f m\n start regime:\t%s\n terminated:\t%s (%d stations)\n weir discharge:\t%.2f m³/s\n",
		p.Yc, p.Yn, p.Regime, p.Reason, len(p.Samples), qw)

	gvf.WriteProfileCSV(outfp, p.Samples)
	tt.Print("profile written to " + outfp + "\n")

	// joint roughness/slope uncertainty screen
	uiprogress.Start()
	bar := uiprogress.AddBar(nsmpl).AppendCompleted().PrependElapsed()
	res, err := gvf.SweepRoughness(xs, q, [2]float64{.01, .1}, [2]float64{.0001, .01},
		gvf.Config{Dx: dx, Length: reach, Direction: gvf.Forward}, nsmpl, 1234, func(int) { bar.Incr() })
	if err != nil {
		log.Fatalf(" gvf.SweepRoughness failed: %v", err)
	}
	uiprogress.Stop()

	ynlo, ynhi, nblown := res[0].Yn, res[0].Yn, 0
	for _, r := range res {
		if r.Yn < ynlo {
			ynlo = r.Yn
		}
		if r.Yn > ynhi {
			ynhi = r.Yn
		}
		if r.Reason != gvf.ReachedTarget {
			nblown++
		}
	}
	fmt.Printf("\n normal depth range over %d samples: %.3f to %.3f m (%d early terminations)\n", nsmpl, ynlo, ynhi, nblown)
}
