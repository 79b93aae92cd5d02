package dip

import (
	"context"
)

// Entity is the base structure shared by all DIP entities.
type Entity struct {
	ID           string `json:"id"                     yaml:"id"`
	Typ          string `json:"typ,omitempty"          yaml:"typ,omitempty"`
	Titel        string `json:"titel,omitempty"        yaml:"titel,omitempty"`
	Datum        string `json:"datum,omitempty"        yaml:"datum,omitempty"`
	Wahlperiode  int    `json:"wahlperiode,omitempty"  yaml:"wahlperiode,omitempty"`
	Aktualisiert string `json:"aktualisiert,omitempty" yaml:"aktualisiert,omitempty"`
}

// Fundstelle locates an entity in the official record.
type Fundstelle struct {
	PDFURL         string `json:"pdf_url,omitempty"        yaml:"pdf_url,omitempty"`
	Dokumentnummer string `json:"dokumentnummer,omitempty" yaml:"dokumentnummer,omitempty"`
	Dokumentart    string `json:"dokumentart,omitempty"    yaml:"dokumentart,omitempty"`
	Herausgeber    string `json:"herausgeber,omitempty"    yaml:"herausgeber,omitempty"`
	Seite          string `json:"seite,omitempty"          yaml:"seite,omitempty"`
}

// Aktivitaet is a parliamentary activity (speech, question, report, ...).
type Aktivitaet struct {
	Entity

	Aktivitaetsart string      `json:"aktivitaetsart,omitempty" yaml:"aktivitaetsart,omitempty"`
	Dokumentart    string      `json:"dokumentart,omitempty"    yaml:"dokumentart,omitempty"`
	Zuordnung      string      `json:"zuordnung,omitempty"      yaml:"zuordnung,omitempty"`
	Deskriptor     []string    `json:"deskriptor,omitempty"     yaml:"deskriptor,omitempty"`
	Fundstelle     *Fundstelle `json:"fundstelle,omitempty"     yaml:"fundstelle,omitempty"`
}

// Drucksache is printed matter (bills, motions, reports). The
// drucksache-text resource additionally carries the full text.
type Drucksache struct {
	Entity

	Drucksachetyp  string      `json:"drucksachetyp,omitempty"  yaml:"drucksachetyp,omitempty"`
	Dokumentart    string      `json:"dokumentart,omitempty"    yaml:"dokumentart,omitempty"`
	Dokumentnummer string      `json:"dokumentnummer,omitempty" yaml:"dokumentnummer,omitempty"`
	Herausgeber    string      `json:"herausgeber,omitempty"    yaml:"herausgeber,omitempty"`
	Autoren        []string    `json:"autoren,omitempty"        yaml:"autoren,omitempty"`
	Fundstelle     *Fundstelle `json:"fundstelle,omitempty"     yaml:"fundstelle,omitempty"`
	Text           string      `json:"text,omitempty"           yaml:"text,omitempty"`
}

// Person is a member of parliament or another recorded person.
type Person struct {
	Entity

	Nachname     string `json:"nachname,omitempty"     yaml:"nachname,omitempty"`
	Vorname      string `json:"vorname,omitempty"      yaml:"vorname,omitempty"`
	Namenszusatz string `json:"namenszusatz,omitempty" yaml:"namenszusatz,omitempty"`
	Basisdatum   string `json:"basisdatum,omitempty"   yaml:"basisdatum,omitempty"`
}

// Plenarprotokoll is a plenary session protocol. The plenarprotokoll-text
// resource additionally carries the full text.
type Plenarprotokoll struct {
	Entity

	Dokumentart       string      `json:"dokumentart,omitempty"       yaml:"dokumentart,omitempty"`
	Dokumentnummer    string      `json:"dokumentnummer,omitempty"    yaml:"dokumentnummer,omitempty"`
	Herausgeber       string      `json:"herausgeber,omitempty"       yaml:"herausgeber,omitempty"`
	Sitzungsbemerkung string      `json:"sitzungsbemerkung,omitempty" yaml:"sitzungsbemerkung,omitempty"`
	Fundstelle        *Fundstelle `json:"fundstelle,omitempty"        yaml:"fundstelle,omitempty"`
	Text              string      `json:"text,omitempty"              yaml:"text,omitempty"`
}

// Vorgang is a legislative procedure.
type Vorgang struct {
	Entity

	Vorgangstyp         string   `json:"vorgangstyp,omitempty"    yaml:"vorgangstyp,omitempty"`
	Beratungsstand      string   `json:"beratungsstand,omitempty" yaml:"beratungsstand,omitempty"`
	Initiative          []string `json:"initiative,omitempty"     yaml:"initiative,omitempty"`
	Sachgebiet          []string `json:"sachgebiet,omitempty"     yaml:"sachgebiet,omitempty"`
	Abstract            string   `json:"abstract,omitempty"       yaml:"abstract,omitempty"`
	GestaOrdnungsnummer string   `json:"gesta,omitempty"          yaml:"gesta,omitempty"`
}

// Vorgangsposition is a single step within a legislative procedure.
type Vorgangsposition struct {
	Entity

	Vorgangsposition string      `json:"vorgangsposition,omitempty" yaml:"vorgangsposition,omitempty"`
	Vorgangstyp      string      `json:"vorgangstyp,omitempty"      yaml:"vorgangstyp,omitempty"`
	VorgangID        string      `json:"vorgang_id,omitempty"       yaml:"vorgang_id,omitempty"`
	Zuordnung        string      `json:"zuordnung,omitempty"        yaml:"zuordnung,omitempty"`
	Gang             bool        `json:"gang,omitempty"             yaml:"gang,omitempty"`
	Fortsetzung      bool        `json:"fortsetzung,omitempty"      yaml:"fortsetzung,omitempty"`
	Nachtrag         bool        `json:"nachtrag,omitempty"         yaml:"nachtrag,omitempty"`
	Fundstelle       *Fundstelle `json:"fundstelle,omitempty"       yaml:"fundstelle,omitempty"`
}

// AktivitaetenClient provides typed access to the aktivitaet resource.
type AktivitaetenClient interface {
	Get(ctx context.Context, id string) (*Aktivitaet, error)
	List(ctx context.Context) (*PageIterator, error)
	Search(ctx context.Context, params *QueryParams) (*PageIterator, error)
}

// DrucksachenClient provides typed access to the drucksache and
// drucksache-text resources.
type DrucksachenClient interface {
	Get(ctx context.Context, id string) (*Drucksache, error)
	GetText(ctx context.Context, id string) (*Drucksache, error)
	List(ctx context.Context) (*PageIterator, error)
	Search(ctx context.Context, params *QueryParams) (*PageIterator, error)
}

// PersonenClient provides typed access to the person resource.
type PersonenClient interface {
	Get(ctx context.Context, id string) (*Person, error)
	List(ctx context.Context) (*PageIterator, error)
	Search(ctx context.Context, params *QueryParams) (*PageIterator, error)
}

// PlenarprotokolleClient provides typed access to the plenarprotokoll and
// plenarprotokoll-text resources.
type PlenarprotokolleClient interface {
	Get(ctx context.Context, id string) (*Plenarprotokoll, error)
	GetText(ctx context.Context, id string) (*Plenarprotokoll, error)
	List(ctx context.Context) (*PageIterator, error)
	Search(ctx context.Context, params *QueryParams) (*PageIterator, error)
}

// VorgaengeClient provides typed access to the vorgang resource.
type VorgaengeClient interface {
	Get(ctx context.Context, id string) (*Vorgang, error)
	List(ctx context.Context) (*PageIterator, error)
	Search(ctx context.Context, params *QueryParams) (*PageIterator, error)
}

// VorgangspositionenClient provides typed access to the vorgangsposition
// resource.
type VorgangspositionenClient interface {
	Get(ctx context.Context, id string) (*Vorgangsposition, error)
	List(ctx context.Context) (*PageIterator, error)
	Search(ctx context.Context, params *QueryParams) (*PageIterator, error)
}
