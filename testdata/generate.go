// Generates sample datasets for trying the CLI:
//
//	go run testdata/generate.go
//
// Produces diamonds.parquet (reference data) and scoring.csv (later data
// with a level the reference never saw and a column missing).
package main

import (
	"log"
	"os"

	"github.com/parquet-go/parquet-go"
)

type Diamond struct {
	ID    int64    `parquet:"id"`
	Carat *float64 `parquet:"carat,optional"`
	Cut   *string  `parquet:"cut,optional"`
	Color *string  `parquet:"color,optional"`
	Price *float64 `parquet:"price,optional"`
}

func ptr[T any](v T) *T { return &v }

func main() {
	diamonds := []Diamond{
		{ID: 1, Carat: ptr(0.23), Cut: ptr("Ideal"), Color: ptr("E"), Price: ptr(326.0)},
		{ID: 2, Carat: ptr(0.21), Cut: ptr("Premium"), Color: ptr("E"), Price: ptr(326.0)},
		{ID: 3, Carat: ptr(0.23), Cut: ptr("Good"), Color: ptr("E"), Price: ptr(327.0)},
		{ID: 4, Carat: ptr(0.29), Cut: ptr("Premium"), Color: ptr("I"), Price: ptr(334.0)},
		{ID: 5, Carat: ptr(0.31), Cut: ptr("Good"), Color: ptr("J"), Price: ptr(335.0)},
		{ID: 6, Carat: nil, Cut: ptr("Very Good"), Color: ptr("J"), Price: ptr(336.0)},
		{ID: 7, Carat: ptr(0.24), Cut: nil, Color: ptr("I"), Price: ptr(336.0)},
		{ID: 8, Carat: ptr(0.26), Cut: ptr("Fair"), Color: ptr("H"), Price: nil},
	}

	file, err := os.Create("testdata/diamonds.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Diamond](file)
	if _, err := writer.Write(diamonds); err != nil {
		log.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		log.Fatal(err)
	}
	log.Println("Generated testdata/diamonds.parquet")

	// "Flawless" is unseen relative to diamonds.parquet; price is absent.
	scoring := "id,carat,cut,color\n" +
		"101,0.30,Ideal,E\n" +
		"102,0.41,Flawless,J\n" +
		"103,,Good,\n"
	if err := os.WriteFile("testdata/scoring.csv", []byte(scoring), 0o644); err != nil {
		log.Fatal(err)
	}
	log.Println("Generated testdata/scoring.csv")
}
