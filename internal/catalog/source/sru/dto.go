package sru

import "encoding/xml"

// searchRetrieveResponse is the root element of an SRU searchRetrieve reply.
// Records are expected in the simple Dublin Core schema.
type searchRetrieveResponse struct {
	XMLName         xml.Name    `xml:"searchRetrieveResponse"`
	NumberOfRecords int         `xml:"numberOfRecords"`
	Records         []sruRecord `xml:"records>record"`
	Diagnostics     diagnostic  `xml:"diagnostics>diagnostic"`
}

type sruRecord struct {
	Identifier string `xml:"recordIdentifier"`
	Position   int    `xml:"recordPosition"`
	Data       dcData `xml:"recordData>dc"`
}

// dcData holds the Dublin Core fields this client understands
type dcData struct {
	Titles      []string `xml:"title"`
	Creators    []string `xml:"creator"`
	Dates       []string `xml:"date"`
	Types       []string `xml:"type"`
	Identifiers []string `xml:"identifier"`
	Description string   `xml:"description"`
}

// diagnostic carries an SRU-level error, e.g. an unparseable query
type diagnostic struct {
	URI     string `xml:"uri"`
	Message string `xml:"message"`
	Details string `xml:"details"`
}
