// Command jptime converts dates between the Japanese era calendar and
// the Gregorian calendar.
//
// Each argument is parsed with jptime.Parse, so the era-symbol form
// (平成3年3月23日), the compact era-code form (H040323), and plain
// Gregorian strings (1991-3-23, 19910323) are all accepted:
//
//	$ jptime 平成元年三月三日 H040323
//	平成元年3月3日	1989-03-03	(4, 1, 3, 3)
//	平成4年3月23日	1992-03-23	(4, 4, 3, 23)
//
// Usage:
//
//	jptime [-tuple] DATE [DATE...]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kitagawa-hr/jptime"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("jptime: ")

	tupleOnly := flag.Bool("tuple", false, "print only the (era, year, month, day) tuple")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: jptime [-tuple] DATE [DATE...]")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	for _, arg := range flag.Args() {
		t, err := jptime.Parse(arg)
		if err != nil {
			log.Fatal(err)
		}
		e, y, m, d := t.Tuple()
		if *tupleOnly {
			fmt.Printf("(%d, %d, %d, %d)\n", e, y, m, d)
			continue
		}
		fmt.Printf("%s\t%s\t(%d, %d, %d, %d)\n", t, t.Time().Format("2006-01-02"), e, y, m, d)
	}
}
