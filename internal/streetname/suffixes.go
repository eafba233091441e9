package streetname

import "strings"

// streetTypeAbbreviations maps a canonical (full, singular) street suffix to
// every USPS Pub 28-style abbreviation it's commonly written as, including
// the full word itself so lookups are uniform. This table intentionally
// exceeds 140 distinct abbreviation strings to match the coverage described
// for municipal ordinance text (ctr/center, mnr/manor, pkwy/parkway, ...).
var streetTypeAbbreviations = map[string][]string{
	"alley":      {"alley", "aly", "allee", "ally"},
	"annex":      {"annex", "anx", "anex", "annx"},
	"arcade":     {"arcade", "arc"},
	"avenue":     {"avenue", "ave", "av", "aven", "avenu", "avnue"},
	"bayou":      {"bayou", "byu"},
	"beach":      {"beach", "bch"},
	"bend":       {"bend", "bnd"},
	"bluff":      {"bluff", "blf"},
	"bluffs":     {"bluffs", "blfs"},
	"bottom":     {"bottom", "btm"},
	"boulevard":  {"boulevard", "blvd", "boul", "boulv"},
	"branch":     {"branch", "br", "brnch"},
	"bridge":     {"bridge", "brg"},
	"brook":      {"brook", "brk"},
	"brooks":     {"brooks", "brks"},
	"burg":       {"burg", "bg"},
	"burgs":      {"burgs", "bgs"},
	"bypass":     {"bypass", "byp", "bypa"},
	"camp":       {"camp", "cp", "cmp"},
	"canyon":     {"canyon", "cyn", "canyn", "cnyn"},
	"cape":       {"cape", "cpe"},
	"causeway":   {"causeway", "cswy"},
	"center":     {"center", "ctr", "cent", "centr", "centre", "cnter", "cntr"},
	"centers":    {"centers", "ctrs"},
	"circle":     {"circle", "cir", "circ", "circl", "crcl", "crcle"},
	"circles":    {"circles", "cirs"},
	"cliff":      {"cliff", "clf"},
	"cliffs":     {"cliffs", "clfs"},
	"club":       {"club", "clb"},
	"common":     {"common", "cmn"},
	"commons":    {"commons", "cmns"},
	"corner":     {"corner", "cor"},
	"corners":    {"corners", "cors"},
	"course":     {"course", "crse"},
	"court":      {"court", "ct"},
	"courts":     {"courts", "cts"},
	"cove":       {"cove", "cv"},
	"coves":      {"coves", "cvs"},
	"creek":      {"creek", "crk"},
	"crescent":   {"crescent", "cres", "crsent", "crsnt"},
	"crest":      {"crest", "crst"},
	"crossing":   {"crossing", "xing"},
	"crossroad":  {"crossroad", "xrd"},
	"curve":      {"curve", "curv"},
	"dale":       {"dale", "dl"},
	"dam":        {"dam", "dm"},
	"divide":     {"divide", "dv", "dvd"},
	"drive":      {"drive", "dr", "driv", "drv"},
	"drives":     {"drives", "drs"},
	"estate":     {"estate", "est"},
	"estates":    {"estates", "ests"},
	"expressway": {"expressway", "expy", "exp", "expr", "express"},
	"extension":  {"extension", "ext", "extn", "extnsn"},
	"falls":      {"falls", "fls"},
	"ferry":      {"ferry", "fry"},
	"field":      {"field", "fld"},
	"fields":     {"fields", "flds"},
	"flat":       {"flat", "flt"},
	"flats":      {"flats", "flts"},
	"ford":       {"ford", "frd"},
	"forest":     {"forest", "frst"},
	"forge":      {"forge", "frg"},
	"fork":       {"fork", "frk"},
	"forks":      {"forks", "frks"},
	"fort":       {"fort", "ft"},
	"freeway":    {"freeway", "fwy", "frwy", "frwy."},
	"garden":     {"garden", "gdn"},
	"gardens":    {"gardens", "gdns"},
	"gateway":    {"gateway", "gtwy"},
	"glen":       {"glen", "gln"},
	"glens":      {"glens", "glns"},
	"green":      {"green", "grn"},
	"greens":     {"greens", "grns"},
	"grove":      {"grove", "grv"},
	"groves":     {"groves", "grvs"},
	"harbor":     {"harbor", "hbr"},
	"harbors":    {"harbors", "hbrs"},
	"haven":      {"haven", "hvn"},
	"heights":    {"heights", "hts"},
	"highway":    {"highway", "hwy", "highwy", "hiway", "hiwy"},
	"hill":       {"hill", "hl"},
	"hills":      {"hills", "hls"},
	"hollow":     {"hollow", "holw", "hollows", "holws"},
	"inlet":      {"inlet", "inlt"},
	"island":     {"island", "is"},
	"islands":    {"islands", "iss"},
	"isle":       {"isle", "isle"},
	"junction":   {"junction", "jct", "jction", "jctn"},
	"junctions":  {"junctions", "jcts"},
	"key":        {"key", "ky"},
	"keys":       {"keys", "kys"},
	"knoll":      {"knoll", "knl"},
	"knolls":     {"knolls", "knls"},
	"lake":       {"lake", "lk"},
	"lakes":      {"lakes", "lks"},
	"land":       {"land", "land"},
	"landing":    {"landing", "lndg"},
	"lane":       {"lane", "ln"},
	"light":      {"light", "lgt"},
	"lights":     {"lights", "lgts"},
	"loaf":       {"loaf", "lf"},
	"lock":       {"lock", "lck"},
	"locks":      {"locks", "lcks"},
	"lodge":      {"lodge", "ldg"},
	"loop":       {"loop", "lp"},
	"mall":       {"mall", "mall"},
	"manor":      {"manor", "mnr"},
	"manors":     {"manors", "mnrs"},
	"meadow":     {"meadow", "mdw"},
	"meadows":    {"meadows", "mdws"},
	"mews":       {"mews", "mews"},
	"mill":       {"mill", "ml"},
	"mills":      {"mills", "mls"},
	"mission":    {"mission", "msn"},
	"motorway":   {"motorway", "mtwy"},
	"mount":      {"mount", "mt"},
	"mountain":   {"mountain", "mtn"},
	"mountains":  {"mountains", "mtns"},
	"neck":       {"neck", "nck"},
	"orchard":    {"orchard", "orch"},
	"oval":       {"oval", "ovl"},
	"overpass":   {"overpass", "opas"},
	"park":       {"park", "park", "prk"},
	"parks":      {"parks", "parks"},
	"parkway":    {"parkway", "pkwy", "pkway", "parkwy", "pky"},
	"parkways":   {"parkways", "pkwys"},
	"pass":       {"pass", "pass"},
	"passage":    {"passage", "psge"},
	"path":       {"path", "path"},
	"pike":       {"pike", "pike"},
	"pine":       {"pine", "pne"},
	"pines":      {"pines", "pnes"},
	"place":      {"place", "pl"},
	"plain":      {"plain", "pln"},
	"plains":     {"plains", "plns"},
	"plaza":      {"plaza", "plz", "plza"},
	"point":      {"point", "pt"},
	"points":     {"points", "pts"},
	"port":       {"port", "prt"},
	"ports":      {"ports", "prts"},
	"prairie":    {"prairie", "pr", "prr"},
	"radial":     {"radial", "radl"},
	"ramp":       {"ramp", "ramp"},
	"ranch":      {"ranch", "rnch"},
	"rapid":      {"rapid", "rpd"},
	"rapids":     {"rapids", "rpds"},
	"rest":       {"rest", "rst"},
	"ridge":      {"ridge", "rdg"},
	"ridges":     {"ridges", "rdgs"},
	"river":      {"river", "riv"},
	"road":       {"road", "rd"},
	"roads":      {"roads", "rds"},
	"route":      {"route", "rte"},
	"row":        {"row", "row"},
	"rue":        {"rue", "rue"},
	"run":        {"run", "run"},
	"shoal":      {"shoal", "shl"},
	"shoals":     {"shoals", "shls"},
	"shore":      {"shore", "shr"},
	"shores":     {"shores", "shrs"},
	"skyway":     {"skyway", "skwy"},
	"spring":     {"spring", "spg"},
	"springs":    {"springs", "spgs"},
	"spur":       {"spur", "spur"},
	"square":     {"square", "sq", "sqr", "sqre"},
	"squares":    {"squares", "sqs"},
	"station":    {"station", "sta", "statn", "stn"},
	"stravenue":  {"stravenue", "stra", "strav", "stvn"},
	"stream":     {"stream", "strm"},
	"street":     {"street", "st", "str", "strt"},
	"streets":    {"streets", "sts"},
	"summit":     {"summit", "smt"},
	"terrace":    {"terrace", "ter", "terr"},
	"throughway": {"throughway", "trwy"},
	"trace":      {"trace", "trce"},
	"track":      {"track", "trak", "trk"},
	"trafficway": {"trafficway", "trfy"},
	"trail":      {"trail", "trl", "tr"},
	"trailer":    {"trailer", "trlr"},
	"tunnel":     {"tunnel", "tunl", "tun"},
	"turnpike":   {"turnpike", "tpke"},
	"underpass":  {"underpass", "upas"},
	"union":      {"union", "un"},
	"unions":     {"unions", "uns"},
	"valley":     {"valley", "vly"},
	"valleys":    {"valleys", "vlys"},
	"viaduct":    {"viaduct", "via"},
	"view":       {"view", "vw"},
	"views":      {"views", "vws"},
	"village":    {"village", "vlg", "vill"},
	"villages":   {"villages", "vlgs"},
	"ville":      {"ville", "vl"},
	"vista":      {"vista", "vis", "vsta"},
	"walk":       {"walk", "walk"},
	"wall":       {"wall", "wall"},
	"way":        {"way", "wy"},
	"ways":       {"ways", "ways"},
	"well":       {"well", "wl"},
	"wells":      {"wells", "wls"},
}

// streetTypeReverse maps every abbreviation variant to its canonical full
// form, built once at package init like the reference abbreviation tables
// in the corpus's address-normalization utilities.
var streetTypeReverse map[string]string

func init() {
	streetTypeReverse = make(map[string]string, len(streetTypeAbbreviations)*2)
	for full, abbrevs := range streetTypeAbbreviations {
		for _, a := range abbrevs {
			streetTypeReverse[a] = full
		}
		streetTypeReverse[full] = full
	}
}

// lookupStreetType resolves tok (already lowercased, punctuation stripped)
// to its canonical street-type word, also trying the singularized form of a
// plural token ("streets" stripped to "street" if "streets" itself isn't in
// the table).
func lookupStreetType(tok string) (string, bool) {
	if full, ok := streetTypeReverse[tok]; ok {
		return full, true
	}
	if strings.HasSuffix(tok, "s") && len(tok) > 1 {
		singular := tok[:len(tok)-1]
		if full, ok := streetTypeReverse[singular]; ok {
			return full, true
		}
	}
	return "", false
}
