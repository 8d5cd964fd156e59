package htmltext

import "testing"

func TestFlatten(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{"empty", "", ""},
		{"plain text", "Thanks for your message.", "Thanks for your message."},
		{"strips tags", "<strong>Thanks!</strong> We got it.", "Thanks! We got it."},
		{
			"paragraphs become newlines",
			"<p>First line.</p><p>Second line.</p>",
			"First line.\nSecond line.",
		},
		{
			"br variants",
			"one<br>two<br/>three<BR />four",
			"one\ntwo\nthree\nfour",
		},
		{"entities", "Fish &amp; chips &gt; salad", "Fish & chips > salad"},
		{
			"collapses whitespace",
			"<div>  spaced \t out  </div><div>next</div>",
			"spaced out\nnext",
		},
		{
			"caps blank runs",
			"a<br><br><br><br>b",
			"a\n\nb",
		},
		{
			"list items",
			"<ul><li>one</li><li>two</li></ul>",
			"one\ntwo",
		},
		{"script removed", `before<script>alert("x")</script>after`, "beforeafter"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Flatten(tc.fragment); got != tc.want {
				t.Fatalf("Flatten(%q) = %q, want %q", tc.fragment, got, tc.want)
			}
		})
	}
}
