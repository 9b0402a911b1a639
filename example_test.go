package proptree_test

import (
	"fmt"
	"os"

	"github.com/aretw0/proptree/pkg/document"
	"github.com/aretw0/proptree/pkg/registry"
)

// Example_independentComponents shows a producer and a consumer meeting at a
// path that neither of them created explicitly.
func Example_independentComponents() {
	reg := registry.New()

	// consumer: grabs its configuration node before anyone filled it in
	imu := reg.GetNode("/sensors/imu", true)

	// producer: writes through an absolute path
	_ = reg.Set("/sensors/imu/rate", 100)
	_ = reg.Set("/sensors/gps[1]/lat", 45.2)

	rate, _ := imu.Scalar("rate")
	fmt.Println("rate:", rate)
	fmt.Println("gps:", reg.Len("/sensors/gps"))

	_ = reg.Root().Fprint(os.Stdout)

	doc := document.NewExporter().Export(reg.GetNode("/sensors", false))
	fmt.Println(doc["imu"])

	// Output:
	// rate: 100
	// gps: 2
	// /sensors
	//   /gps[0]:
	//   /gps[1]:
	//     lat: 45.2
	//   /imu
	//     rate: 100
	// map[rate:100]
}
