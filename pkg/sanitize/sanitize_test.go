package sanitize

import "testing"

func TestText(t *testing.T) {
	cases := map[string]string{
		"  plain text  ":                          "plain text",
		"<b>bold</b> name":                        "bold name",
		"&lt;script&gt;alert(1)&lt;/script&gt;":   "alert(1)",
		"<img src=x onerror=alert(1)>2BHK flat":   "2BHK flat",
		"needs kitchen &amp; living room redone":  "needs kitchen & living room redone",
	}
	for in, want := range cases {
		if got := Text(in); got != want {
			t.Fatalf("Text(%q) = %q, want %q", in, got, want)
		}
	}
}
