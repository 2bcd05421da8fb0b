package toon

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestConfigDocument(t *testing.T) {
	convey.Convey("a config-shaped document", t, func() {
		src := `service: billing
replicas: 3
db:
  host: db.internal
  port: 5432
endpoints[2]{path,method}:
  /invoices,GET
  /invoices,POST`
		root, err := Decode(src)
		convey.So(err, convey.ShouldBeNil)
		convey.So(root.Get("service"), convey.ShouldNotBeNil)

		port, err := root.Get("db").Get("port").AsInt()
		convey.So(err, convey.ShouldBeNil)
		convey.So(port, convey.ShouldEqual, 5432)

		endpoints, err := root.Get("endpoints").Items()
		convey.So(err, convey.ShouldBeNil)
		convey.So(len(endpoints), convey.ShouldEqual, 2)
		method, _ := endpoints[1].Get("method").AsStr()
		convey.So(method, convey.ShouldEqual, "POST")
	})
}

func TestLenientIngestion(t *testing.T) {
	convey.Convey("sloppy input from a generator", t, func() {
		// Wrong declared count and a stray over-indented line.
		src := `tags[5]: a,b,c
      junk
owner: ops`
		var warnings []Warning
		root, err := DecodeWithOptions(src, DecodeOptions{
			LengthPolicy: LengthWarn,
			Warnings:     &warnings,
		})
		convey.So(err, convey.ShouldBeNil)
		convey.So(root.Get("tags").Len(), convey.ShouldEqual, 3)
		convey.So(len(warnings), convey.ShouldEqual, 1)
		convey.So(warnings[0].Declared, convey.ShouldEqual, 5)
		convey.So(warnings[0].Actual, convey.ShouldEqual, 3)

		owner, _ := root.Get("owner").AsStr()
		convey.So(owner, convey.ShouldEqual, "ops")

		convey.Convey("the same input fails a strict decode", func() {
			_, err := DecodeWithOptions(src, DecodeOptions{Strict: true, Indent: 2})
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestTypedPipeline(t *testing.T) {
	convey.Convey("struct in, text out, struct back", t, func() {
		type job struct {
			Name     string   `json:"name" toon:"name"`
			Priority int      `json:"priority" toon:"priority"`
			Labels   []string `json:"labels" toon:"labels"`
		}
		in := job{Name: "reindex", Priority: 2, Labels: []string{"batch", "nightly"}}

		text, err := EncodeAny(in, DefaultEncodeOptions())
		convey.So(err, convey.ShouldBeNil)
		convey.So(text, convey.ShouldEqual, "name: reindex\npriority: 2\nlabels[2]: batch,nightly")

		out, err := DecodeTyped[job](text, DefaultDecodeOptions())
		convey.So(err, convey.ShouldBeNil)
		convey.So(out, convey.ShouldResemble, in)
	})
}

func TestJSONInterop(t *testing.T) {
	convey.Convey("JSON corpus converted and back", t, func() {
		in := `{"orders":[{"id":101,"total":19.90},{"id":102,"total":5.00}]}`
		doc, err := FromJSON([]byte(in))
		convey.So(err, convey.ShouldBeNil)

		text := Encode(doc)
		convey.So(text, convey.ShouldEqual, "orders[2]{id,total}:\n  101,19.90\n  102,5.00")

		back, err := Decode(text)
		convey.So(err, convey.ShouldBeNil)
		out, err := ToJSON(back)
		convey.So(err, convey.ShouldBeNil)
		convey.So(string(out), convey.ShouldEqual, in)
	})
}
