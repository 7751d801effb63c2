package jptime_test

import (
	"fmt"
	"time"

	"github.com/kitagawa-hr/jptime"
)

func ExampleParse() {
	t, _ := jptime.Parse("平成元年三月三日")
	fmt.Println(t)
	fmt.Println(t.Time().Format("2006-01-02"))
	// Output:
	// 平成元年3月3日
	// 1989-03-03
}

func ExampleParse_eraCode() {
	t, _ := jptime.Parse("H040323")
	era, year, month, day := t.Tuple()
	fmt.Println(era, year, month, day)
	fmt.Println(t.Time().Format("2006-01-02"))
	// Output:
	// 4 4 3 23
	// 1992-03-23
}

func ExampleParse_gregorian() {
	t, _ := jptime.Parse("19920323")
	fmt.Println(t)
	// Output: 平成4年3月23日
}

func ExampleFromTime() {
	t, _ := jptime.FromTime(time.Date(2019, time.May, 1, 0, 0, 0, 0, time.UTC))
	fmt.Println(t)
	// Output: 令和元年5月1日
}

func ExampleTime_Tuple() {
	t, _ := jptime.Parse("昭和45年3月23日")
	era, year, month, day := t.Tuple()
	fmt.Printf("(%d, %d, %d, %d)\n", era, year, month, day)
	// Output: (3, 45, 3, 23)
}

func ExampleNewConverter() {
	table, _ := jptime.NewTable([]jptime.Era{
		{Name: "甲", Code: 'A', Begin: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)},
	})
	conv := jptime.NewConverter(table)
	t, _ := conv.Parse("甲五年六月七日")
	fmt.Println(t.Time().Format("2006-01-02"))
	// Output: 2004-06-07
}

func ExampleNormalizeNumerals() {
	s, _ := jptime.NormalizeNumerals("平成元年三月二十三日")
	fmt.Println(s)
	// Output: 平成1年3月23日
}
