// Package color builds a vertex coloring on top of package mis: three
// variants (MIS-peel, Jones-Plassmann, Largest-Degree-First) all assign
// colors by repeatedly carving an independent set out of the still-uncolored
// vertices. Jones-Plassmann and Largest-Degree-First finish each round with a
// first-fit recolor pass (FirstFit); MIS-peel gives each peeled set its
// round's color directly.
package color
