package score2

import (
	"os"

	"github.com/pebbe/util"
	. "gopkg.in/check.v1"

	"github.com/magnusbojejuul-dotcom/Hypertensionsapp/patient"
)

type EvaluatorSuite struct {
	Table *Table
}

var _ = Suite(&EvaluatorSuite{})

func (s *EvaluatorSuite) SetUpSuite(c *C) {
	f, err := os.Open("testdata/dsam_matrix.csv")
	util.CheckErr(err)
	defer f.Close()
	s.Table, err = LoadTable(f)
	util.CheckErr(err)
}

func (s *EvaluatorSuite) TestManualPassthrough(c *C) {
	for _, pct := range []float64{0, 0.1, 7.5, 50, 100} {
		res, err := EvaluateManual(pct, 58)
		c.Assert(err, IsNil)
		c.Assert(res.Percentage, Equals, pct)
		c.Assert(res.Mode, Equals, ModeManual)
	}
}

func (s *EvaluatorSuite) TestManualOutOfRange(c *C) {
	for _, pct := range []float64{-0.1, -10, 100.1, 150} {
		_, err := EvaluateManual(pct, 58)
		c.Assert(err, FitsTypeOf, &RangeError{})
	}
	_, err := EvaluateManual(150, 58)
	c.Assert(err, ErrorMatches, "percentage 150 is outside the valid range.*")
}

func (s *EvaluatorSuite) TestTableLookupScenario(c *C) {
	// 62 year old male non-smoker, LDL 3.4, SBP 150 bands to
	// 60-64/M/non-smoker/3.0-3.9/140-159 which the fixture maps to 7.5
	p := &patient.Patient{Age: 62, Sex: patient.Male, Smoker: false, SBP: 150, LDL: 3.4}
	res, err := EvaluateTable(p, s.Table)
	c.Assert(err, IsNil)
	c.Assert(res.Percentage, Equals, 7.5)
	c.Assert(res.Mode, Equals, ModeTable)
}

func (s *EvaluatorSuite) TestTableLookupMiss(c *C) {
	// Same patient but SBP 185 bands to 180+, which the fixture lacks
	p := &patient.Patient{Age: 62, Sex: patient.Male, Smoker: false, SBP: 185, LDL: 3.4}
	_, err := EvaluateTable(p, s.Table)
	c.Assert(err, FitsTypeOf, &NoMatchError{})
}

func (s *EvaluatorSuite) TestInterventionThresholds(c *C) {
	th, ok := InterventionThreshold(45)
	c.Assert(ok, Equals, true)
	c.Assert(th, Equals, 5.0)

	th, ok = InterventionThreshold(59)
	c.Assert(ok, Equals, true)
	c.Assert(th, Equals, 5.0)

	th, ok = InterventionThreshold(65)
	c.Assert(ok, Equals, true)
	c.Assert(th, Equals, 7.5)

	th, ok = InterventionThreshold(72)
	c.Assert(ok, Equals, true)
	c.Assert(th, Equals, 10.0)

	_, ok = InterventionThreshold(39)
	c.Assert(ok, Equals, false)
	_, ok = InterventionThreshold(76)
	c.Assert(ok, Equals, false)
}

func (s *EvaluatorSuite) TestThresholdFlagOnResult(c *C) {
	res, err := EvaluateManual(8.0, 65)
	c.Assert(err, IsNil)
	c.Assert(res.Threshold, NotNil)
	c.Assert(*res.Threshold, Equals, 7.5)
	c.Assert(res.AboveThreshold, NotNil)
	c.Assert(*res.AboveThreshold, Equals, true)

	res, err = EvaluateManual(7.0, 65)
	c.Assert(err, IsNil)
	c.Assert(*res.AboveThreshold, Equals, false)

	// Outside the validated 40-75 range no threshold applies
	res, err = EvaluateManual(12.0, 80)
	c.Assert(err, IsNil)
	c.Assert(res.Threshold, IsNil)
	c.Assert(res.AboveThreshold, IsNil)
}

func (s *EvaluatorSuite) TestFormulaModeRefuses(c *C) {
	f, err := os.Open("testdata/coefficients.csv")
	util.CheckErr(err)
	defer f.Close()
	coeffs, err := LoadCoefficients(f)
	c.Assert(err, IsNil)
	c.Assert(coeffs, HasLen, 4)
	c.Assert(coeffs["age"], Equals, 0.10)

	p := &patient.Patient{Age: 62, Sex: patient.Male, SBP: 150, LDL: 3.4}
	_, err = EvaluateFormula(p, coeffs)
	c.Assert(err, FitsTypeOf, &NotImplementedError{})
}
