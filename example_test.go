package jsontree_test

import (
	"fmt"
	"log"
	"os"

	"github.com/d1ced/jsontree"
)

func Example_serialize() {
	root := jsontree.NewObject("")
	root.Append(jsontree.NewString("name", "John Doe"))
	root.Append(jsontree.NewNumber("age", 28))
	root.Write(os.Stdout)
	// Output:
	// {
	//     "name": "John Doe",
	//     "age": 28
	// }
}

func Example_deserialize() {
	root, err := jsontree.Parse([]byte(
		`{"name": "Jane Smith", "age": 32, "skills": ["JavaScript", "Python", "C++"]}`))
	if err != nil {
		log.Fatal(err)
	}
	age, err := root.Query("age")
	if err != nil {
		log.Fatal(err)
	}
	v, err := age.AsNumber()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("age: %d\n", int(v))
	// Output:
	// age: 32
}

func ExampleNode_RemoveKey() {
	root, _ := jsontree.Parse([]byte(`{"a": 1, "b": 2, "c": 3}`))
	root.RemoveKey("a")
	// swap-and-pop moved the last member into the removed slot
	fmt.Println(root.Keys())
	// Output:
	// [c b]
}
