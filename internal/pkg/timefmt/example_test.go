package timefmt_test

import (
	"context"
	"fmt"
	"os"
	"time"

	"payroll/internal/pkg/localization"
	"payroll/internal/pkg/timefmt"
)

func ExampleFormatter_Format() {
	formatter, err := timefmt.New(localization.NewContextResolver(time.UTC))
	if err != nil {
		panic(err)
	}

	zone, err := localization.LoadZone("America/New_York")
	if err != nil {
		panic(err)
	}
	ctx := localization.WithZone(context.Background(), zone)

	paidAt := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	rendered, ok, _ := formatter.Format(ctx, &paidAt)
	fmt.Println(rendered, ok)

	// without a zone in the context the resolver falls back to UTC
	rendered, ok, _ = formatter.Format(context.Background(), &paidAt)
	fmt.Println(rendered, ok)

	_, ok, _ = formatter.Format(ctx, nil)
	fmt.Println(ok)

	// Output:
	// 2024-Jan-15 05:00:00 AM EST true
	// 2024-Jan-15 10:00:00 AM UTC true
	// false
}

func ExampleFormatter_Serialize() {
	formatter, err := timefmt.New(localization.NewContextResolver(time.UTC))
	if err != nil {
		panic(err)
	}

	paidAt := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	w := timefmt.NewJSONStringWriter(os.Stdout)

	if err := formatter.Serialize(context.Background(), &paidAt, w); err != nil {
		panic(err)
	}
	if err := formatter.Serialize(context.Background(), nil, w); err != nil {
		panic(err)
	}
	fmt.Println()

	// Output:
	// "2024-Jan-15 10:00:00 AM UTC"
}
