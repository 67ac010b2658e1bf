package slotarena_test

import (
	"errors"
	"fmt"

	"github.com/hupe1980/slotarena"
	"github.com/hupe1980/slotarena/key"
	"github.com/hupe1980/slotarena/version"
)

func Example() {
	a := slotarena.NewDefault[string]()

	hello := a.Insert("Hello")
	world := a.Insert("World")

	fmt.Println(a.At(hello), a.At(world), a.Len())

	a.Remove(hello)
	_, ok := a.Get(hello)
	fmt.Println(ok, a.Len())

	moon := a.Insert("Moon")
	fmt.Println(moon.Index() == hello.Index(), moon == hello)

	// Output:
	// Hello World 2
	// false 1
	// true false
}

func ExampleArena_Take() {
	type small = key.ID[uint16, version.Checked8]

	a := slotarena.New[small, version.Checked8, string]()

	k := a.Insert("x")
	for range 254 {
		a.Remove(k)
		k = a.Insert("x")
	}

	_, err := a.Take(k)
	fmt.Println(errors.Is(err, slotarena.ErrVersionExhausted), a.Retired(k))

	// Output:
	// true true
}

func ExampleArena_Retain() {
	a := slotarena.NewDefault[int]()
	for i := range 6 {
		a.Insert(i)
	}

	a.Retain(func(_ key.Default, v int) bool { return v%3 == 0 })

	for k, v := range a.All() {
		fmt.Println(k, v)
	}

	// Output:
	// I0 0
	// I3 3
}

func ExampleArena_Backward() {
	a := slotarena.NewDefault[string]()
	a.Insert("a")
	a.Insert("b")
	a.Insert("c")

	for _, v := range a.Backward() {
		fmt.Print(v)
	}
	fmt.Println()

	// Output:
	// cba
}
