package windows

// Family represents the different Windows product families a label can resolve to
type Family string

const (
	Windows11        Family = "windows-11"
	Windows10        Family = "windows-10"
	Windows8         Family = "windows-8"
	Windows7         Family = "windows-7"
	WindowsVista     Family = "windows-vista"
	WindowsXP        Family = "windows-xp"
	Server2019Plus   Family = "windows-server"
	ServerSemiAnnual Family = "windows-server-sac"
	Server2016       Family = "windows-server-2016"
	Server2012R2     Family = "windows-server-2012-r2"
	Server2012       Family = "windows-server-2012"
	Server2008R2     Family = "windows-server-2008-r2"
	Server2008       Family = "windows-server-2008"
	Server2003       Family = "windows-server-2003"
	Windows2000      Family = "windows-2000"
)

// Precedence is the order in which the dispatcher tries each family; the first family to accept a label wins. Newer
// products come first so that labels accepted by several families (e.g. "2008-r2" is also a plausible Server 2008
// label with release "R2") resolve to the most specific product.
var Precedence = []Family{
	Windows11,
	Windows10,
	Windows8,
	Windows7,
	WindowsVista,
	WindowsXP,
	Server2019Plus,
	ServerSemiAnnual,
	Server2016,
	Server2012R2,
	Server2012,
	Server2008R2,
	Server2008,
	Server2003,
	Windows2000,
}

// All contains all Windows families, in precedence order
var All = Precedence

// BuildResolving lists the families whose free-text labels are resolved through a build correspondence table.
var BuildResolving = []Family{
	Windows11,
	Windows10,
	Server2019Plus,
}

var productNames = map[Family]string{
	Windows11:        "Windows 11",
	Windows10:        "Windows 10",
	Windows8:         "Windows 8",
	Windows7:         "Windows 7",
	WindowsVista:     "Windows Vista",
	WindowsXP:        "Windows XP",
	Server2019Plus:   "Windows Server",
	ServerSemiAnnual: "Windows Server",
	Server2016:       "Windows Server 2016",
	Server2012R2:     "Windows Server 2012 R2",
	Server2012:       "Windows Server 2012",
	Server2008R2:     "Windows Server 2008 R2",
	Server2008:       "Windows Server 2008",
	Server2003:       "Windows Server 2003",
	Windows2000:      "Windows 2000",
}

// ProductName is the base product line of the family. Some families refine it per label (the server year, the 8.1
// update, the Windows 10 IoT Core variant).
func (f Family) ProductName() string {
	return productNames[f]
}

func (f Family) String() string {
	return string(f)
}

// ParseFamily returns the family with the given name, if it exists.
func ParseFamily(name string) (Family, bool) {
	for _, f := range All {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}
