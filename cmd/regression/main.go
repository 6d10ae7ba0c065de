// Utilidad suelta: imprime un numero aleatorio y ajusta una regresion lineal
// de una variable sobre una muestra fija.
package main

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/montanaflynn/stats"
)

func main() {
	fmt.Println(rand.IntN(100) + 1)

	sample := stats.Series{
		{X: 1, Y: 2},
		{X: 2, Y: 4},
		{X: 3, Y: 5},
		{X: 4, Y: 4},
		{X: 5, Y: 6},
	}

	fitted, err := stats.LinearRegression(sample)
	if err != nil {
		log.Fatal(err)
	}

	slope := (fitted[1].Y - fitted[0].Y) / (fitted[1].X - fitted[0].X)
	intercept := fitted[0].Y - slope*fitted[0].X

	fmt.Printf("Slope (coefficient): %.2f\n", slope)
	fmt.Printf("Intercept: %.2f\n", intercept)
	fmt.Printf("\nPrediction for X = 6: %.2f\n", intercept+slope*6)
}
