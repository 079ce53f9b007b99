package primitive_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"fixture-generator/primitive"
)

func Example() {
	type Celsius float64
	type Empty struct{}

	var nilMapping *primitive.Mapping

	fmt.Println(primitive.KindOf(nil))
	fmt.Println(primitive.KindOf("neko"))
	fmt.Println(primitive.KindOf(true))
	fmt.Println(primitive.KindOf(int32(7)))
	fmt.Println(primitive.KindOf(uint16(7)))
	fmt.Println(primitive.KindOf(Celsius(36.6)))
	fmt.Println(primitive.KindOf([]any{1, 2}))
	fmt.Println(primitive.KindOf(primitive.NewMapping(0)))
	fmt.Println(primitive.KindOf(nilMapping))
	fmt.Println(primitive.KindOf(Empty{}))
	fmt.Println(primitive.KindEnum(0))
	// Output:
	// KindAbsent
	// KindString
	// KindBool
	// KindInt
	// KindUint
	// KindFloat
	// KindSequence
	// KindMapping
	// KindAbsent
	// KindUnsupported
	// KindEnum(0)
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	five := 5
	var nilPtr *int
	var nilIface fmt.Stringer

	tests := []struct {
		name  string
		value any
		want  primitive.KindEnum
	}{
		{"pointer to int", &five, primitive.KindInt},
		{"nil pointer", nilPtr, primitive.KindAbsent},
		{"nil interface", nilIface, primitive.KindAbsent},
		{"array", [2]int{1, 2}, primitive.KindSequence},
		{"nil slice", []int(nil), primitive.KindSequence},
		{"go map", map[string]int{}, primitive.KindMapping},
		{"mapping value", primitive.Mapping{}, primitive.KindMapping},
		{"func", func() {}, primitive.KindUnsupported},
		{"channel", make(chan int), primitive.KindUnsupported},
		{"float32", float32(1), primitive.KindFloat},
		{"uintptr", uintptr(1), primitive.KindUint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, primitive.KindOf(tt.value))
		})
	}
}

func TestKindEnum_Predicates(t *testing.T) {
	t.Parallel()

	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		switch k {
		case primitive.KindInt, primitive.KindUint, primitive.KindFloat:
			assert.True(t, k.IsNumber(), k.String())
			assert.False(t, k.IsComposite(), k.String())
		case primitive.KindSequence, primitive.KindMapping:
			assert.False(t, k.IsNumber(), k.String())
			assert.True(t, k.IsComposite(), k.String())
		default:
			assert.False(t, k.IsNumber(), k.String())
			assert.False(t, k.IsComposite(), k.String())
		}
	}
}
