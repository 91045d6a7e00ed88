package reports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/iic-bit/IIC-Backend/internal/participant"
)

func sampleParticipants() []participant.Participant {
	p := func(name, groupID, team string) participant.Participant {
		return participant.Participant{
			Name:    name,
			Email:   strings.ToLower(name) + "@example.com",
			Phone:   "9876543210",
			College: "BIT",
			Course:  "BTech",
			Branch:  "CSE",
			Year:    "3",
			Group:   team,
			GroupID: groupID,
			EventID: 7,
		}
	}
	// Two groups in fetch order: G1 has two members, G2 has one.
	return []participant.Participant{
		p("Asha", "GRP-AAAA1111", "Alpha"),
		p("Binu", "GRP-AAAA1111", "Alpha"),
		p("Chitra", "GRP-BBBB2222", "Beta"),
	}
}

func TestGroupParticipantsFirstSeenOrder(t *testing.T) {
	groups := GroupParticipants(sampleParticipants())

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].GroupID != "GRP-AAAA1111" || groups[1].GroupID != "GRP-BBBB2222" {
		t.Fatalf("groups out of first-seen order: %s, %s", groups[0].GroupID, groups[1].GroupID)
	}
	if len(groups[0].Members) != 2 || len(groups[1].Members) != 1 {
		t.Fatalf("wrong member counts: %d, %d", len(groups[0].Members), len(groups[1].Members))
	}
	if groups[0].Members[0].Name != "Asha" || groups[0].Members[1].Name != "Binu" {
		t.Fatalf("member order not preserved: %s, %s", groups[0].Members[0].Name, groups[0].Members[1].Name)
	}
}

func TestGroupParticipantsEmpty(t *testing.T) {
	if got := GroupParticipants(nil); len(got) != 0 {
		t.Fatalf("expected no groups, got %d", len(got))
	}
}

func TestWriteCSVGroupedLayout(t *testing.T) {
	groups := GroupParticipants(sampleParticipants())

	var buf bytes.Buffer
	if err := NewRegistrationExporter().WriteCSV(&buf, groups); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}

	// header + (group header + 2 members + blank) + (group header + 1 member + blank)
	if len(records) != 8 {
		t.Fatalf("expected 8 rows, got %d", len(records))
	}

	if records[0][0] != "GroupId" || records[0][1] != "MembersCount" {
		t.Fatalf("unexpected header row: %v", records[0])
	}

	// First group block.
	if records[1][0] != "GRP-AAAA1111" || records[1][1] != "2" {
		t.Fatalf("unexpected group header row: %v", records[1])
	}
	if records[2][3] != "Asha" || records[3][3] != "Binu" {
		t.Fatalf("member rows out of order: %v / %v", records[2], records[3])
	}
	for _, cell := range records[4] {
		if cell != "" {
			t.Fatalf("expected blank separator row, got %v", records[4])
		}
	}

	// Second group block.
	if records[5][0] != "GRP-BBBB2222" || records[5][1] != "1" {
		t.Fatalf("unexpected second group header row: %v", records[5])
	}
	if records[6][3] != "Chitra" {
		t.Fatalf("unexpected member row: %v", records[6])
	}
}

func TestWriteCSVMemberRowColumns(t *testing.T) {
	groups := GroupParticipants(sampleParticipants()[:1])

	var buf bytes.Buffer
	if err := NewRegistrationExporter().WriteCSV(&buf, groups); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}

	row := records[2]
	want := []string{"GRP-AAAA1111", "", "Alpha", "Asha", "asha@example.com", "9876543210", "BIT", "BTech", "CSE", "3", ""}
	if len(row) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(row))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Fatalf("column %d: want %q, got %q", i, want[i], row[i])
		}
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	_, _, _, err := NewRegistrationExporter().Export("docx", "Hackathon", nil)
	if err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestExportExcel(t *testing.T) {
	data, filename, contentType, err := NewRegistrationExporter().Export(FormatExcel, "Hackathon", GroupParticipants(sampleParticipants()))
	if err != nil {
		t.Fatalf("excel export failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty xlsx payload")
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Fatalf("unexpected filename %q", filename)
	}
	if !strings.Contains(contentType, "spreadsheet") {
		t.Fatalf("unexpected content type %q", contentType)
	}
}

func TestExportPDF(t *testing.T) {
	data, filename, contentType, err := NewRegistrationExporter().Export(FormatPDF, "Hackathon", GroupParticipants(sampleParticipants()))
	if err != nil {
		t.Fatalf("pdf export failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("payload is not a pdf")
	}
	if !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
	if contentType != "application/pdf" {
		t.Fatalf("unexpected content type %q", contentType)
	}
}
