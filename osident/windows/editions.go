package windows

import (
	"strings"

	"github.com/anchore/osident/osident/osierr"
	"github.com/anchore/osident/osident/record"
)

// client editions
const (
	Education              record.Edition = "Education"
	Enterprise             record.Edition = "Enterprise"
	EnterpriseMultiSession record.Edition = "Enterprise multi-session"
	EnterpriseIoT          record.Edition = "Enterprise IoT"
	EnterpriseN            record.Edition = "Enterprise N"
	Enterprise64           record.Edition = "Enterprise 64-bit"
	EnterpriseX64          record.Edition = "Enterprise X64"
	Home                   record.Edition = "Home"
	HomeBasic              record.Edition = "Home Basic"
	HomeBasic64            record.Edition = "Home Basic 64-bit"
	HomeBasicN             record.Edition = "Home Basic N"
	HomeBasicN64           record.Edition = "Home Basic N 64-bit"
	HomePremium            record.Edition = "Home Premium"
	HomePremium64          record.Edition = "Home Premium 64-bit"
	HomePremiumN           record.Edition = "Home Premium N"
	IoTEnterprise          record.Edition = "IoT Enterprise"
	N                      record.Edition = "N"
	Pro                    record.Edition = "Pro"
	ProEducation           record.Edition = "Pro Education"
	ProForWorkstations     record.Edition = "Pro for Workstations"
	ProWithMediaCenter     record.Edition = "Pro with Media Center"
	Professional           record.Edition = "Professional"
	ProfessionalEmbedded   record.Edition = "Professional for Embedded Systems"
	ProfessionalN          record.Edition = "Professional N"
	ProfessionalX64        record.Edition = "Professional x64"
	SL                     record.Edition = "SL"
	Starter                record.Edition = "Starter"
	StarterN               record.Edition = "Starter N"
	Ultimate               record.Edition = "Ultimate"
	Ultimate64             record.Edition = "Ultimate 64-bit"
	UltimateEmbedded       record.Edition = "Ultimate for Embedded Systems"
	UltimateN              record.Edition = "Ultimate N"
	Business               record.Edition = "Business"
	BusinessN              record.Edition = "Business N"
	BusinessN64            record.Edition = "Business N 64-bit"
)

// server editions
const (
	AdvancedServer   record.Edition = "Advanced Server"
	Datacenter       record.Edition = "Datacenter"
	DatacenterServer record.Edition = "Datacenter Server"
	Essentials       record.Edition = "Essentials"
	Foundation       record.Edition = "Foundation"
	HPC              record.Edition = "HPC"
	Server           record.Edition = "Server"
	Standard         record.Edition = "Standard"
	Web              record.Edition = "Web"
)

// editionGroups maps a structured edition selector to the editions it stands for, per family.
type editionGroups struct {
	family Family
	order  []string
	groups map[string][]record.Edition
}

func newEditionGroups(family Family, order []string, groups map[string][]record.Edition) editionGroups {
	return editionGroups{family: family, order: order, groups: groups}
}

// editionGroup returns the editions selected by the code, or an unrecognized-field error for the given input.
func (g editionGroups) editionGroup(input, code string) ([]record.Edition, error) {
	eds, ok := g.groups[strings.ToLower(code)]
	if !ok {
		return nil, osierr.UnrecognizedField(string(g.family), input, "editions", code)
	}
	return copyEditions(eds), nil
}

// all is the concatenation of every group, in selector order.
func (g editionGroups) all() []record.Edition {
	var out []record.Edition
	for _, code := range g.order {
		out = append(out, g.groups[code]...)
	}
	return out
}

// editionsOrAll returns the selected group, or every edition when no selector is given.
func (g editionGroups) editionsOrAll(input, code string, present bool) ([]record.Edition, error) {
	if !present {
		return g.all(), nil
	}
	return g.editionGroup(input, code)
}

var windows11Editions = newEditionGroups(Windows11, []string{"e", "iot", "w"}, map[string][]record.Edition{
	"e":   {Education, Enterprise, EnterpriseMultiSession},
	"iot": {IoTEnterprise},
	"w":   {Home, Pro, ProEducation, ProForWorkstations},
})

var windows10Editions = newEditionGroups(Windows10, []string{"e", "w"}, map[string][]record.Edition{
	"e": {Education, Enterprise, EnterpriseIoT},
	"w": {Home, Pro, ProEducation, ProForWorkstations},
})

var (
	windows8Editions = []record.Edition{
		Enterprise, EnterpriseN, N, ProWithMediaCenter, Professional, ProfessionalN, SL,
	}
	windows7Editions = []record.Edition{
		Enterprise, EnterpriseN, HomeBasic, HomePremium, HomePremiumN, Professional, ProfessionalEmbedded,
		ProfessionalN, Starter, StarterN, Ultimate, UltimateEmbedded, UltimateN,
	}
	windowsVistaEditions = []record.Edition{
		Business, BusinessN, BusinessN64, Enterprise, Enterprise64, EnterpriseX64, HomeBasic, HomeBasic64,
		HomeBasicN, HomeBasicN64, HomePremium, HomePremium64, Starter, Ultimate, Ultimate64,
	}
	windowsXPEditions = []record.Edition{
		Home, Professional, ProfessionalEmbedded, ProfessionalX64, Starter,
	}
	windows2000Editions = []record.Edition{
		Professional, Server, AdvancedServer, DatacenterServer,
	}
	server2003Editions = []record.Edition{
		Datacenter, Enterprise, Standard, Web,
	}
	server2008Editions = []record.Edition{
		Datacenter, Enterprise, Foundation, Standard, Web,
	}
	server2008R2Editions = []record.Edition{
		Datacenter, Enterprise, Foundation, HPC, Standard, Web,
	}
	server2012Editions = []record.Edition{
		Datacenter, Essentials, Foundation, Standard,
	}
	server2016Editions = []record.Edition{
		Datacenter, Essentials, Standard,
	}
	server2019PlusEditions = []record.Edition{
		Datacenter, Standard,
	}
)

func copyEditions(eds []record.Edition) []record.Edition {
	out := make([]record.Edition, len(eds))
	copy(out, eds)
	return out
}
