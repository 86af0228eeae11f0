package go_maidenhead_test

import (
	"fmt"

	go_maidenhead "go-maidenhead"
)

func ExampleToGridLocator() {
	locator, _ := go_maidenhead.ToGridLocator(go_maidenhead.Coordinate{Lat: 36.778261, Lng: -119.4179324})
	fmt.Println(locator)
	locator, _ = go_maidenhead.ToGridLocator(go_maidenhead.LatLng{29.617238, 106.324862})
	fmt.Println(locator)
	// Output:
	// DM06gs
	// OL39do
}

func ExampleToCoordinate() {
	c, _ := go_maidenhead.ToCoordinate("DM06gs")
	fmt.Printf("%.4f %.4f\n", c.Lat, c.Lng)
	// Output: 36.7500 -119.5000
}

func ExampleToBoundingBox() {
	box, _ := go_maidenhead.ToBoundingBox("DM06gs")
	fmt.Printf("%.4f,%.4f %.4f,%.4f\n", box.LowerLeft.Lat, box.LowerLeft.Lng, box.UpperRight.Lat, box.UpperRight.Lng)
	// Output: 36.7500,-119.5000 36.7917,-119.4167
}

func ExampleValidateGridLocator() {
	fmt.Println(go_maidenhead.ValidateGridLocator("DM06gs"))
	fmt.Println(go_maidenhead.ValidateGridLocator("DM06g"))
	fmt.Println(go_maidenhead.ValidateGridLocator("ZZ99zz"))
	// Output:
	// true
	// false
	// false
}
