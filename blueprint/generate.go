package blueprint

import "math/rand/v2"

// roomTemplate holds the dimension ranges for one generated room.
type roomTemplate struct {
	wMin, wMax float64
	hMin, hMax float64
}

var generateTemplates = map[string]roomTemplate{
	"Living Room":    {15, 22, 12, 18},
	"Kitchen":        {8, 14, 8, 14},
	"Master Bedroom": {12, 18, 10, 15},
	"Bathroom":       {6, 9, 6, 9},
}

// Generate returns a randomized four-room house layout: the living room
// anchored at the origin, the kitchen along its right edge, the master
// bedroom above, and the bathroom to the right above the kitchen.
func Generate() []*Shape {
	lr := generateTemplates["Living Room"]
	lrW, lrH := uniform(lr.wMin, lr.wMax), uniform(lr.hMin, lr.hMax)
	rooms := []*Shape{NewRoom("Living Room", 0, 0, lrW, lrH)}

	k := generateTemplates["Kitchen"]
	kW, kH := uniform(k.wMin, k.wMax), uniform(k.hMin, k.hMax)
	kitchen := NewRoom("Kitchen", lrW, uniform(0, lrH-kH), kW, kH)
	rooms = append(rooms, kitchen)

	mbr := generateTemplates["Master Bedroom"]
	mbrW, mbrH := uniform(mbr.wMin, mbr.wMax), uniform(mbr.hMin, mbr.hMax)
	rooms = append(rooms, NewRoom("Master Bedroom", uniform(0, lrW-mbrW), lrH, mbrW, mbrH))

	bath := generateTemplates["Bathroom"]
	bW, bH := uniform(bath.wMin, bath.wMax), uniform(bath.hMin, bath.hMax)
	rooms = append(rooms, NewRoom("Bathroom", lrW, kitchen.Y+kH, bW, bH))

	return rooms
}

// uniform draws from [a, b). The bounds may arrive reversed when a
// surrounding room is smaller than the one being placed; the draw then
// lands between them all the same.
func uniform(a, b float64) float64 {
	return a + rand.Float64()*(b-a)
}
