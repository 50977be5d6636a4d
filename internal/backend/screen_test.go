package backend

import (
	"os"
	"path/filepath"
	"testing"
)

const screenListTwoSessions = "There are screens on:\n" +
	"\t12345.myproject\t(Attached)\n" +
	"\t67890.scratch\t(Detached)\n" +
	"2 Sockets in /run/screen/S-simon.\n"

const screenListNoSockets = "No Sockets found in /run/screen/S-simon.\n"

const screenListSingle = "There is a screen on:\n" +
	"\t4242.deploy notes\t(Detached)\n" +
	"1 Socket in /run/screen/S-simon.\n"

func TestParseScreenList(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:   "two sessions",
			input:  screenListTwoSessions,
			expect: []string{"myproject", "scratch"},
		},
		{
			name:   "no sockets",
			input:  screenListNoSockets,
			expect: nil,
		},
		{
			name:   "single session with space in name",
			input:  screenListSingle,
			expect: []string{"deploy notes"},
		},
		{
			name:   "empty output",
			input:  "",
			expect: nil,
		},
		{
			name:   "indented with spaces instead of tab",
			input:  "There is a screen on:\n        9999.spacedent\t(Detached)\n1 Socket in /tmp/screens/S-simon.\n",
			expect: []string{"spacedent"},
		},
		{
			name:   "dead session still listed",
			input:  "There is a screen on:\n\t31337.zombie\t(Dead ???)\nRemove dead screens with 'screen -wipe'.\n1 Socket in /run/screen/S-simon.\n",
			expect: []string{"zombie"},
		},
		{
			name:   "name containing dots",
			input:  "There is a screen on:\n\t777.my.project.v2\t(Detached)\n1 Socket in /run/screen/S-simon.\n",
			expect: []string{"my.project.v2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseScreenList(tt.input)
			if len(got) != len(tt.expect) {
				t.Fatalf("parseScreenList() = %v, want %v", got, tt.expect)
			}
			for i := range got {
				if got[i] != tt.expect[i] {
					t.Errorf("session %d: got %q, want %q", i, got[i], tt.expect[i])
				}
			}
		})
	}
}

func TestScreenEntryName(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"12345.myproject", "myproject"},
		{"12345.myproject\t(Attached)", "myproject"},
		{"12345.name with spaces  ", "name with spaces"},
		{"777.a.b.c", "a.b.c"},
		{"There are screens on:", ""},
		{"2 Sockets in /run/screen/S-simon.", ""},
		{".noprefix", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := screenEntryName(tt.input); got != tt.expect {
				t.Errorf("screenEntryName(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestCurrentSessionFromSTY(t *testing.T) {
	s := &screenBackend{path: "screen"}

	t.Setenv("STY", "12345.myproject")
	name, ok := s.CurrentSession()
	if !ok || name != "myproject" {
		t.Errorf("CurrentSession() = %q, %v, want %q, true", name, ok, "myproject")
	}

	t.Setenv("STY", "")
	if _, ok := s.CurrentSession(); ok {
		t.Error("CurrentSession() reported a session without STY set")
	}
}

func TestCountScreenClients(t *testing.T) {
	psOut := `/usr/bin/ps ax -o command=
SCREEN -S myproject
screen -r myproject
screen -x 12345.myproject
screen -r scratch
-bash
/usr/bin/screen -r myproject
grep screen myproject
`

	tests := []struct {
		name    string
		session string
		expect  int
	}{
		{"three clients attached", "myproject", 3},
		{"one client", "scratch", 1},
		{"no clients", "missing", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countScreenClients(psOut, tt.session); got != tt.expect {
				t.Errorf("countScreenClients(%q) = %d, want %d", tt.session, got, tt.expect)
			}
		})
	}
}

func TestCountScreenClientsNeverNegative(t *testing.T) {
	if got := countScreenClients("", "anything"); got != 0 {
		t.Errorf("countScreenClients on empty output = %d, want 0", got)
	}
}

func TestSessionActivityFromSocketDir(t *testing.T) {
	dir := t.TempDir()
	sock := filepath.Join(dir, "12345.myproject")
	if err := os.WriteFile(sock, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	s := &screenBackend{path: "screen", socketDir: dir}

	at, ok := s.SessionActivity("myproject")
	if !ok {
		t.Fatal("SessionActivity() = absent, want present")
	}
	if at.IsZero() {
		t.Error("SessionActivity() returned zero time")
	}

	if _, ok := s.SessionActivity("vanished"); ok {
		t.Error("SessionActivity() reported a session with no socket")
	}
}

func TestScreenValidateName(t *testing.T) {
	s := &screenBackend{path: "screen"}

	if err := s.ValidateName(""); err != ErrEmptyName {
		t.Errorf("ValidateName(\"\") = %v, want ErrEmptyName", err)
	}
	// screen imposes no character restrictions
	for _, name := range []string{"my.project", "a:b", "name with spaces"} {
		if err := s.ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) = %v, want nil", name, err)
		}
	}
}
