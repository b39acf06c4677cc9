package slug

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMake(t *testing.T) {
	Convey("Given free text titles", t, func() {
		Convey("accents are folded and spaces become dashes", func() {
			So(Make("Atlético de Madrid 2024"), ShouldEqual, "atletico-de-madrid-2024")
		})

		Convey("punctuation runs collapse to one dash", func() {
			So(Make("  Mbappé -- signs for   Real Madrid!! "), ShouldEqual, "mbappe-signs-for-real-madrid")
		})

		Convey("german sharp s is transliterated", func() {
			So(Make("Fußball"), ShouldEqual, "fusball")
		})

		Convey("symbols only yield an empty slug", func() {
			So(Make("!!! ???"), ShouldBeEmpty)
		})

		Convey("very long titles are bounded", func() {
			out := Make(strings.Repeat("premier league ", 20))
			So(len(out), ShouldBeLessThanOrEqualTo, maxLength)
			So(strings.HasSuffix(out, "-"), ShouldBeFalse)
		})
	})
}

func TestWithSuffix(t *testing.T) {
	Convey("Given a base slug", t, func() {
		So(WithSuffix("derby-report", 1), ShouldEqual, "derby-report")
		So(WithSuffix("derby-report", 2), ShouldEqual, "derby-report-2")
		So(WithSuffix("derby-report", 12), ShouldEqual, "derby-report-12")
	})
}
