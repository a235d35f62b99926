package score2

import (
	"os"
	"strings"

	"github.com/pebbe/util"
	. "gopkg.in/check.v1"

	"github.com/magnusbojejuul-dotcom/Hypertensionsapp/patient"
)

type ExamplesSuite struct {
	Patients []patient.Patient
}

var _ = Suite(&ExamplesSuite{})

func (s *ExamplesSuite) SetUpSuite(c *C) {
	f, err := os.Open("testdata/example_patients.csv")
	util.CheckErr(err)
	defer f.Close()
	s.Patients, err = LoadExamples(f)
	util.CheckErr(err)
}

func (s *ExamplesSuite) TestLoadedCount(c *C) {
	c.Assert(s.Patients, HasLen, 3)
}

func (s *ExamplesSuite) TestRequiredAttributes(c *C) {
	p := s.Patients[0]
	c.Assert(p.Age, Equals, 58)
	c.Assert(p.Sex, Equals, patient.Male)
	c.Assert(p.Smoker, Equals, false)
	c.Assert(p.SBP, Equals, 150)
	c.Assert(p.LDL, Equals, 3.0)
}

func (s *ExamplesSuite) TestOptionalLabs(c *C) {
	p := s.Patients[0]
	c.Assert(p.Sodium, NotNil)
	c.Assert(*p.Sodium, Equals, 138.0)
	c.Assert(*p.Potassium, Equals, 4.2)
	c.Assert(*p.EGFR, Equals, 85.0)
	c.Assert(*p.Urate, Equals, 0.35)

	// Blank lab cells stay nil
	p = s.Patients[1]
	c.Assert(p.Sodium, IsNil)
	c.Assert(p.Urate, IsNil)
	c.Assert(p.Potassium, NotNil)
	c.Assert(*p.Potassium, Equals, 5.2)
}

func (s *ExamplesSuite) TestFlagsAndMedications(c *C) {
	c.Assert(s.Patients[0].Diabetes, Equals, false)
	c.Assert(s.Patients[0].Medications, HasLen, 0)

	c.Assert(s.Patients[1].Diabetes, Equals, true)
	c.Assert(s.Patients[1].Medications, DeepEquals, []patient.DrugClass{patient.ACEInhibitor, patient.Thiazide})

	c.Assert(s.Patients[2].CKD, Equals, true)
	c.Assert(s.Patients[2].Medications, DeepEquals, []patient.DrugClass{patient.NSAID})
}

func (s *ExamplesSuite) TestMissingColumnsIsSchemaError(c *C) {
	in := "age,sex,sbp,ldl\n58,M,150,3.0\n"
	_, err := LoadExamples(strings.NewReader(in))
	c.Assert(err, FitsTypeOf, &SchemaError{})
	c.Assert(err.(*SchemaError).Missing, DeepEquals, []string{"smoker"})
}

func (s *ExamplesSuite) TestBadAgeIsRejected(c *C) {
	in := "age,sex,smoker,sbp,ldl\nold,M,no,150,3.0\n"
	_, err := LoadExamples(strings.NewReader(in))
	c.Assert(err, ErrorMatches, "line 2: bad age.*")
}

func (s *ExamplesSuite) TestCoefficientSchemaAndDuplicates(c *C) {
	_, err := LoadCoefficients(strings.NewReader("variable\nage\n"))
	c.Assert(err, FitsTypeOf, &SchemaError{})

	in := "variable,coefficient\nage,0.1\nage,0.2\n"
	_, err = LoadCoefficients(strings.NewReader(in))
	c.Assert(err, ErrorMatches, `line 3: variable "age" defined twice`)
}
