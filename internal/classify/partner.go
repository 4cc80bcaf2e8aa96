// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"github.com/pdiddy/harvest/pkg/types"
)

// partnerSizes is evaluated independently of partnerTypes so that one label
// such as "Entreprise - Large group" yields both a type and a size.
var partnerSizes = Table[types.CompanySize]{
	{Contains("large group"), types.SizeLarge},
	{Contains("sme"), types.SizeSME},
	{Contains("mid cap", "midcap"), types.SizeMidCap},
}

type partnerClass struct {
	Type types.PartnerType
	// Research marks public bodies, whose size is always research-organization.
	Research bool
}

var partnerTypes = Table[partnerClass]{
	{Contains("entreprise", "company"), partnerClass{types.PartnerCompany, false}},
	{Contains("epic"), partnerClass{types.PartnerEPIC, true}},
	{Contains("academic", "university", "université"), partnerClass{types.PartnerAcademic, true}},
	{Contains("public research"), partnerClass{types.PartnerPublicResearch, true}},
	{Contains("research infrastructure"), partnerClass{types.PartnerInfrastructure, true}},
}

// PartnerType parses a partner type label into a type and a company size.
func PartnerType(label string) (types.PartnerType, types.CompanySize) {
	if Normalize(label) == "" {
		return types.PartnerOther, types.SizeUnknown
	}
	size := partnerSizes.ClassifyOr(label, types.SizeUnknown)
	class, ok := partnerTypes.Classify(label)
	if !ok {
		return types.PartnerOther, size
	}
	if class.Research {
		return class.Type, types.SizeResearch
	}
	return class.Type, size
}

var partnerStatuses = Table[types.PartnerStatus]{
	{Contains("positive"), types.StatusPositive},
	{Contains("work programme"), types.StatusWorkProgramme},
	{Contains("initial email"), types.StatusInitialEmail},
	{Contains("not contacted"), types.StatusNotContacted},
}

// PartnerStatus classifies an engagement status label. Blank labels are
// unknown; unrecognized labels are StatusOther.
func PartnerStatus(label string) types.PartnerStatus {
	if Normalize(label) == "" {
		return types.StatusUnknown
	}
	return partnerStatuses.ClassifyOr(label, types.StatusOther)
}

const defaultPartnerIcon = "handshake"

var partnerIcons = Table[string]{
	{Contains("safran"), "rocket"},
	{Contains("edf"), "bolt"},
	{Contains("onera"), "plane"},
	{Contains("airbus"), "plane-departure"},
	{Contains("cerfacs"), "server"},
	{Contains("ifpen"), "gas-pump"},
	{Contains("totalenergies", "total"), "oil-can"},
	{Contains("u luxembourg", "luxembourg"), "university"},
}

// PartnerIcon returns the Font Awesome icon shown next to a partner name.
func PartnerIcon(name string) string {
	return partnerIcons.ClassifyOr(name, defaultPartnerIcon)
}
