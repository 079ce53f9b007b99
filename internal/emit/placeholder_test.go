package emit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	t.Parallel()

	twelve := make([]string, 12)
	for i := range twelve {
		twelve[i] = fmt.Sprintf("f%d", i)
	}

	small := Bindings{
		StructName: "Foo",
		FieldNames: []string{"a", "b", "c"},
		FieldTypes: []string{"int", "bool", "std::map<int, std::string>"},
	}

	tests := []struct {
		name string
		tmpl string
		b    Bindings
		want string
	}{
		{"name and count", "$struct_name has $field_num fields", small, "Foo has 3 fields"},
		{"joined names", "    NEKO_SERIALIZER($field_names)", small, "    NEKO_SERIALIZER(a, b, c)"},
		{"joined types", "$field_types", small, "int, bool, std::map<int, std::string>"},
		{"indexed name and type", "$type_2 $field_2", small, "std::map<int, std::string> c"},
		{"shared numeric prefix", "$field_1 $field_11", Bindings{FieldNames: twelve}, "f1 f11"},
		{"descending indexes", "$field_11,$field_10,$field_1", Bindings{FieldNames: twelve}, "f11,f10,f1"},
		{"out of range index stays", "$field_1 $field_11", small, "b $field_11"},
		{"braces separate suffix", "${field_1}0", small, "b0"},
		{"braces around named", "${struct_name}Ptr", small, "FooPtr"},
		{"base class", "$base_class", Bindings{BaseClass: "Base"}, "Base"},
		{"empty base class", "[$base_class]", small, "[]"},
		{"unknown placeholder stays", "$unknown ${other}", small, "$unknown ${other}"},
		{"longer word stays", "$struct_names", small, "$struct_names"},
		{"non canonical index stays", "$field_01", small, "$field_01"},
		{"lone dollar", "cost: $ and $5", small, "cost: $ and $5"},
		{"no placeholders", "plain text", small, "plain text"},
		{"values are not rescanned", "$struct_name", Bindings{StructName: "$field_0", FieldNames: []string{"x"}}, "$field_0"},
		{"no fields", "$field_num:$field_names:", Bindings{}, "0::"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Substitute(tt.tmpl, tt.b))
		})
	}
}
