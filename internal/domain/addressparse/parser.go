// Package addressparse extrae campos estructurados (datos fiscales, dirección tailandesa, contacto)
// de un bloque de texto libre pegado por el usuario.
//
// La extracción es destructiva y ordenada: cada patrón encontrado se elimina del texto de trabajo
// para que las pasadas siguientes no vuelvan a capturarlo. Nunca devuelve error; lo que no se
// reconoce queda vacío.
package addressparse

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// HeadOffice valor normalizado de la sucursal "casa matriz".
const HeadOffice = "สำนักงานใหญ่"

// BangkokTH nombre normalizado de la provincia de Bangkok.
const BangkokTH = "กรุงเทพมหานคร"

// Result salida del parser. Todos los campos son "" si no hubo coincidencia.
//
// CompanyName es el nombre para la factura fiscal; FullLabel es la etiqueta de entrega
// (persona + empresa). Difieren cuando el texto trae la empresa después del nombre de la persona.
type Result struct {
	CompanyName  string
	TaxID        string
	Branch       string
	AddrNumber   string
	AddrMoo      string
	AddrVillage  string
	AddrSoi      string
	AddrRoad     string
	AddrTambon   string
	AddrAmphoe   string
	AddrProvince string
	AddrZipcode  string
	Phone        string
	Email        string
	FullLabel    string
	MapsURL      string
	ContactName  string
}

var (
	invisibleChars = strings.NewReplacer("\u200b", "", "\u200c", "", "\u200d", "", "\ufeff", "")
	spaceRun       = regexp.MustCompile(`\s+`)

	// Tokens globales, en orden de extracción.
	taxIDRe      = regexp.MustCompile(`\d{13}`)
	phoneRe      = regexp.MustCompile(`(?:^|\D)(0\d{1,2}[-\s]?\d{3}[-\s]?\d{3,4})(?:\D|$)`)
	phoneSepRe   = regexp.MustCompile(`[-\s]`)
	emailRe      = regexp.MustCompile(`[a-zA-Z0-9._-]+@[a-zA-Z0-9._-]+\.[a-zA-Z0-9._-]+`)
	mapsRe       = regexp.MustCompile(`https?://\S+`)
	headOfficeRe = regexp.MustCompile(`(?i)\(?สำนักงานใหญ่\)?|\bhead\s*office\b`)
	branchRe     = regexp.MustCompile(`(?i)(?:สาขา|\bbranch\b)\s*(?:ที่|no\.)?[\s:]*([a-z0-9]+)`)
	zipcodeRe    = regexp.MustCompile(`(?:^|\D)(\d{5})(?:\D|$)`)
	provinceRe   = regexp.MustCompile(`(?i)(?:จังหวัด|จ\.|\bprovince\b|\bchangwat\b)\s*([^\s,]+)`)
	bangkokThRe  = regexp.MustCompile(`กรุงเทพ(?:มหานคร|ฯ)?`)
	bangkokEnRe  = regexp.MustCompile(`(?i)\bbangkok\b`)
	amphoeRe     = regexp.MustCompile(`(?i)(?:อำเภอ|อ\.|เขต|\bdistrict\b|\bamphoe\b|\bamphur\b)\s*([^\s,]+)`)
	tambonRe     = regexp.MustCompile(`(?i)(?:ตำบล|ต\.|แขวง|\btambon\b|\bsubdistrict\b|\bkhwaeng\b)\s*([^\s,]+)`)

	// Punto de corte nombre / dirección.
	companySuffixRe = regexp.MustCompile(`(?i)จำกัด(?:\s*\(มหาชน\))?|\bco\.,?\s*ltd\.|\blimited\b|\binc\.|\bco\.|\bltd\.`)
	addressStartRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:เลขที่|\bno\.)\s*\d`),
		regexp.MustCompile(`(?i)ถนน|ถ\.|\broad\b`),
		regexp.MustCompile(`(?i)ซอย|ซ\.|\bsoi\b`),
		regexp.MustCompile(`(?:^|\s)(\d+/\d+)`),
		regexp.MustCompile(`(?i)\d+[/\-\d]*\s*(?:หมู่|ม\.|ถนน|ถ\.|ซอย|ซ\.|ตำบล|ต\.|แขวง|อำเภอ|อ\.|เขต|จังหวัด|จ\.|\bmoo\b|\broad\b|\bsoi\b)`),
	}
	slashNumberRe = regexp.MustCompile(`\d+/\d+`)
	namePrefixRe  = regexp.MustCompile(`(?i)^(?:(?:ที่อยู่|address|ชื่อ|name|:)\s*)+`)

	// Componentes de la parte de dirección.
	mooRe         = regexp.MustCompile(`(?i)(?:หมู่ที่|หมู่|ม\.|\bmoo\b|\bmu\b)\s*(\d+)`)
	soiRe         = regexp.MustCompile(`(?i)(?:ซอย|ซ\.|\bsoi\b|\blane\b)\s*([^\s,]+(?:\s+\d+)?)`)
	roadRe        = regexp.MustCompile(`(?i)(?:ถนน|ถ\.|\broad\b|\brd\.)\s*([^\s,]+)`)
	houseLeadRe   = regexp.MustCompile(`^(\d+[/\-\d]*)`)
	houseRe       = regexp.MustCompile(`(?i)(?:เลขที่|\bno\.)?\s*(\d+[/\-\d]*)`)
	onlyNumericRe = regexp.MustCompile(`^[\d\s,./-]+$`)
	trailingCoRe  = regexp.MustCompile(`(?i)^(?:บริษัท|บ\.|หจก|ห้าง|ร้าน|โรง|คณะ|การ|the\b|company\b)`)

	contactNameRe = regexp.MustCompile(`(?i)(?:\bK\.|คุณ|\bMrs\.|\bMr\.|\bMs\.|\bMiss\b|นางสาว|น\.ส\.|นาย|นาง)\s*[^\s\d][^\s]*(?:\s+[^\s\d][^\s]*)?`)
)

// Parse convierte un bloque de texto libre en un Result.
func Parse(text string) Result {
	var r Result

	w := normalize(text)
	if w == "" {
		return r
	}

	// 1. Tokens globales (cualquier posición del texto).
	r.TaxID, w = extractToken(taxIDRe, w)
	r.Phone, w = extractToken(phoneRe, w)
	r.Phone = phoneSepRe.ReplaceAllString(r.Phone, "")
	r.Email, w = extractToken(emailRe, w)
	r.MapsURL, w = extractToken(mapsRe, w)
	r.Branch, w = extractBranch(w)
	r.AddrZipcode, w = extractToken(zipcodeRe, w)
	r.AddrProvince, w = extractProvince(w)
	r.AddrAmphoe, w = extractWhole(amphoeRe, w)
	r.AddrTambon, w = extractWhole(tambonRe, w)
	w = normalize(w)

	r.ContactName = strings.TrimSpace(contactNameRe.FindString(w))

	// 2. Corte entre nombre y dirección.
	split := splitIndex(w)
	namePart := strings.TrimSpace(w[:split])
	addressPart := strings.TrimSpace(w[split:])

	name := strings.Trim(namePrefixRe.ReplaceAllString(namePart, ""), " ,")
	r.CompanyName = name
	r.FullLabel = name

	// 3. Componentes de la dirección.
	a := addressPart
	r.AddrMoo, a = extractWhole(mooRe, a)
	r.AddrSoi, a = extractWhole(soiRe, a)
	r.AddrRoad, a = extractWhole(roadRe, a)
	a = normalize(a)
	if m := houseLeadRe.FindStringSubmatchIndex(a); m != nil {
		r.AddrNumber = a[m[2]:m[3]]
		a = a[m[1]:]
	} else {
		r.AddrNumber, a = extractWhole(houseRe, a)
	}

	leftover := strings.Trim(normalize(a), " ,")
	if utf8.RuneCountInString(leftover) > 2 && !onlyNumericRe.MatchString(leftover) {
		if trailingCoRe.MatchString(leftover) {
			r.CompanyName = leftover
			r.FullLabel = strings.TrimSpace(name + " " + leftover)
		} else {
			r.AddrVillage = leftover
		}
	}

	return r
}

// normalize elimina caracteres invisibles y colapsa espacios.
func normalize(s string) string {
	s = invisibleChars.Replace(s)
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

// extractToken busca la primera coincidencia; devuelve el grupo 1 (o la coincidencia completa si no
// hay grupo) y el texto con ese tramo reemplazado por un espacio. Solo se elimina el grupo capturado,
// los delimitadores de contexto (\D, ^) se conservan.
func extractToken(re *regexp.Regexp, s string) (string, string) {
	m := re.FindStringSubmatchIndex(s)
	if m == nil {
		return "", s
	}
	start, end := m[0], m[1]
	if len(m) >= 4 && m[2] >= 0 {
		start, end = m[2], m[3]
	}
	return strings.TrimSpace(s[start:end]), s[:start] + " " + s[end:]
}

// extractWhole igual que extractToken pero elimina la coincidencia completa (palabra clave incluida).
func extractWhole(re *regexp.Regexp, s string) (string, string) {
	m := re.FindStringSubmatchIndex(s)
	if m == nil {
		return "", s
	}
	value := s[m[0]:m[1]]
	if len(m) >= 4 && m[2] >= 0 {
		value = s[m[2]:m[3]]
	}
	return strings.TrimSpace(value), s[:m[0]] + " " + s[m[1]:]
}

func extractBranch(s string) (string, string) {
	if headOfficeRe.MatchString(s) {
		return HeadOffice, headOfficeRe.ReplaceAllString(s, " ")
	}
	// Palabra clave + identificador.
	return extractWhole(branchRe, s)
}

func extractProvince(s string) (string, string) {
	if v, rest := extractWhole(provinceRe, s); v != "" {
		return v, rest
	}
	if bangkokThRe.MatchString(s) {
		return BangkokTH, bangkokThRe.ReplaceAllString(s, " ")
	}
	if bangkokEnRe.MatchString(s) {
		return "Bangkok", bangkokEnRe.ReplaceAllString(s, " ")
	}
	return "", s
}

// splitIndex devuelve el índice (en bytes) donde empieza la dirección; len(s) si no hay dirección.
func splitIndex(s string) int {
	// Prioridad A: sufijo societario, se corta justo después.
	if m := companySuffixRe.FindStringIndex(s); m != nil {
		return m[1]
	}

	// Prioridad B: el indicador de dirección que aparece primero.
	best := -1
	for _, re := range addressStartRes {
		m := re.FindStringSubmatchIndex(s)
		if m == nil {
			continue
		}
		start := m[0]
		if len(m) >= 4 && m[2] >= 0 {
			start = m[2]
		}
		if best < 0 || start < best {
			best = start
		}
	}
	if best >= 0 {
		return best
	}

	if m := slashNumberRe.FindStringIndex(s); m != nil {
		return m[0]
	}
	return len(s)
}
