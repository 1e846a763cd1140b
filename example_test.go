package esid_test

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/esid"
	"github.com/dmitrymomot/esid/pkg/nif"
)

func ExampleChecker_Message() {
	ctx := context.Background()
	checker, err := esid.New(ctx)
	if err != nil {
		panic(err)
	}

	err = checker.Check(ctx, nif.TypeAuto, "X9675401A")
	fmt.Println(checker.Message("en", err))
	fmt.Println(checker.Message("es", err))
	// Output:
	// expected check digit Z, got A
	// se esperaba la letra de control Z, se recibió A
}
