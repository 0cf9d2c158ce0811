// Package forms renders the three director-appointment filings as plain
// UTF-8 text. Rendering is pure: the signing date is passed in by the
// caller so repeated invocations are byte-identical.
package forms

import (
	"fmt"
	"strings"
	"text/template"

	"compliancedesk/cmd/internal/domain/workflow"
)

type FormType string

const (
	FormDIR2 FormType = "DIR-2"
	FormDIR8 FormType = "DIR-8"
	FormMBP1 FormType = "MBP-1"
)

// RequiredForms is the standard set generated for a director appointment.
var RequiredForms = []FormType{FormDIR2, FormDIR8, FormMBP1}

// NoInterestsPlaceholder is printed in the MBP-1 when the appointee
// declared no interests in other companies.
const NoInterestsPlaceholder = "[No other interests declared]"

type formData struct {
	Info       workflow.DirectorInfo
	EntityName string
	Date       string
	Interests  string
}

var dir2Template = template.Must(template.New("dir2").Parse(`FORM DIR-2
Consent to act as a Director of the Company

{{.Info.FullName}}
{{.Info.ResidentialAddress}}
Email id: {{.Info.Email}}

To,
{{.EntityName}}
Company Address

SUBJECT: CONSENT TO ACT AS A DIRECTOR OF THE COMPANY

I, {{.Info.FullName}}, hereby give my consent to act as the Director of {{.EntityName}} pursuant to Section 152(5) of the Companies Act 2013.

1. DIN: {{.Info.DIN}}
2. Name: {{.Info.FullName}}
3. Father's Name: {{.Info.FatherName}}
4. Address: {{.Info.ResidentialAddress}}
5. Email ID: {{.Info.Email}}
6. Mobile No.: {{.Info.MobileNumber}}
7. Income Tax PAN: {{.Info.PAN}}
8. Occupation: {{.Info.Occupation}}
9. Date of Birth: {{.Info.DateOfBirth}}
10. Nationality: {{.Info.Nationality}}
11. Existing Companies/Positions: {{.Info.ExistingDirectorships}}, {{.Info.ExistingPositions}}
12. Professional Membership: {{.Info.ProfessionalMembership}}

Declaration
I declare that I have not been convicted of any offence and am not disqualified from being a director.

Date: {{.Date}}                    {{.Info.FullName}}
Place: {{.Info.PlaceOfSigning}}                              DIN: {{.Info.DIN}}
`))

var dir8Template = template.Must(template.New("dir8").Parse(`FORM DIR-8
Intimation by Director

Name of the Director: {{.Info.FullName}}
Address: {{.Info.ResidentialAddress}}

Registration No. of Company: {{if .Info.CompanyRegistration}}{{.Info.CompanyRegistration}}{{else}}TBD{{end}}
Nominal Capital: Rs. {{.Info.NominalCapital}}
Paid-Up Capital: Rs. {{.Info.PaidUpCapital}}
Name of Company: {{.EntityName}}
Address of Registered Office: Company Address

To,
The Board of Directors

I, {{.Info.FullName}}, son of {{.Info.FatherName}}, resident of {{.Info.City}}, director in the company hereby give notice that I am/was director in the following other companies during the last three years:

[Previous directorships table - to be filled manually]

I confirm that I have not incurred disqualification under section 164(2) of the Companies Act, 2013.

                                                            (Name: {{.Info.FullName}})
Date: {{.Date}}
Place: {{.Info.PlaceOfSigning}}                              DIN: {{.Info.DIN}}
`))

var mbp1Template = template.Must(template.New("mbp1").Parse(`FORM MBP-1
Notice of interest by director

Name: {{.Info.FullName}}
Address: {{.Info.ResidentialAddress}}

To
The Board of Directors
{{.EntityName}}
Company Address

Dear Sir(s),

I, {{.Info.FullName}}, son of {{.Info.FatherName}}, resident of {{.Info.City}}, being a director in the company hereby give notice of my interest or concern in the following companies:

{{.Interests}}

                                                            (Name: {{.Info.FullName}})
Date: {{.Date}}
Place: {{.Info.PlaceOfSigning}}                              DIN: {{.Info.DIN}}
`))

// Render produces the text body for one form. date is the pre-formatted
// signing date (the caller owns the clock).
func Render(form FormType, info workflow.DirectorInfo, entityName, date string) (string, error) {
	data := formData{
		Info:       info,
		EntityName: entityName,
		Date:       date,
		Interests:  renderInterests(info.OtherCompanyInterests),
	}

	var tmpl *template.Template
	switch form {
	case FormDIR2:
		tmpl = dir2Template
	case FormDIR8:
		tmpl = dir8Template
	case FormMBP1:
		tmpl = mbp1Template
	default:
		return "", fmt.Errorf("unknown form type %q", form)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render %s: %w", form, err)
	}
	return sb.String(), nil
}

func renderInterests(interests []workflow.InterestEntry) string {
	if len(interests) == 0 {
		return NoInterestsPlaceholder
	}

	lines := make([]string, len(interests))
	for i, in := range interests {
		lines[i] = fmt.Sprintf("%d. %s - %s - %s - %s",
			i+1, in.CompanyName, in.NatureOfInterest, in.Shareholding, in.DateOfInterest)
	}
	return strings.Join(lines, "\n")
}
