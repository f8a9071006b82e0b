package catalog

// labels is the global label table. Its order is the order labels appear in
// every generated grammar and manifest, independent of how the support set
// was written.
var labels = []Label{
	{"css", "source.css", "css|css.erb", ""},
	{"html", "text.html.basic", "html|htm|shtml|xhtml|inc|tmpl|tpl", ""},
	{"ini", "source.ini", "ini|conf", ""},
	{"java", "source.java", "java|bsh", ""},
	{"lua", "source.lua", "lua", ""},
	{"makefile", "source.makefile", "Makefile|makefile|GNUmakefile|OCamlMakefile", ""},
	{"perl", "source.perl", "perl|pl|pm|pod|t|PL|psgi|vcl", ""},
	{"r", "source.r", `R|r|s|S|Rprofile|\{\.r.+?\}`, ""},
	{"ruby", "source.ruby", "ruby|rb|rbx|rjs|Rakefile|rake|cgi|fcgi|gemspec|irbrc|Capfile|ru|prawn|Cheffile|Gemfile|Guardfile|Hobofile|Vagrantfile|Appraisals|Rantfile|Berksfile|Berksfile.lock|Thorfile|Puppetfile", ""},
	{"php", "source.php", "php|php3|php4|php5|phpt|phtml|aw|ctp", "\n  - include: text.html.basic"},
	{"sql", "source.sql", "sql|ddl|dml", ""},
	{"vs_net", "source.asp.vb.net", "vb", ""},
	{"xml", "text.xml", "xml|xsd|tld|jsp|pt|cpt|dtml|rss|opml", ""},
	{"xsl", "text.xml.xsl", "xsl|xslt", ""},
	{"yaml", "source.yaml", "yaml|yml", ""},
	{"dosbatch", "source.batchfile", "bat|batch", ""},
	{"clojure", "source.clojure", "clj|cljs|clojure", ""},
	{"coffee", "source.coffee", "coffee|Cakefile|coffee.erb", ""},
	{"c", "source.c", "c|h", ""},
	{"cpp", "source.cpp", `cpp|c\+\+|cxx`, ""},
	{"diff", "source.diff", "patch|diff|rej", ""},
	{"dockerfile", "source.dockerfile", "dockerfile|Dockerfile", ""},
	{"git_commit", "text.git-commit", "COMMIT_EDITMSG|MERGE_MSG", ""},
	{"git_rebase", "text.git-rebase", "git-rebase-todo", ""},
	{"go", "source.go", "go|golang", ""},
	{"groovy", "source.groovy", "groovy|gvy", ""},
	{"pug", "text.pug", "jade|pug", ""},
	{"javascript", "source.js", `js|jsx|javascript|es6|mjs|cjs|dataviewjs|\{\.js.+?\}`, ""},
	{"js_regexp", "source.js.regexp", "regexp", ""},
	{"json", "source.json", "json|json5|sublime-settings|sublime-menu|sublime-keymap|sublime-mousemap|sublime-theme|sublime-build|sublime-project|sublime-completions", ""},
	{"jsonc", "source.json.comments", "jsonc", ""},
	{"less", "source.css.less", "less", ""},
	{"objc", "source.objc", "objectivec|objective-c|mm|objc|obj-c|m|h", ""},
	{"swift", "source.swift", "swift", ""},
	{"scss", "source.css.scss", "scss", ""},
	{"perl6", "source.perl.6", "perl6|p6|pl6|pm6|nqp", ""},
	{"powershell", "source.powershell", "powershell|ps1|psm1|psd1|pwsh", ""},
	{"python", "source.python", `python|py|py3|rpy|pyw|cpy|SConstruct|Sconstruct|sconstruct|SConscript|gyp|gypi|\{\.python.+?\}`, ""},
	{"julia", "source.julia", `julia|\{\.julia.+?\}`, ""},
	{"regexp_python", "source.regexp.python", "re", ""},
	{"rust", "source.rust", `rust|rs|\{\.rust.+?\}`, ""},
	{"scala", "source.scala", "scala|sbt", ""},
	{"shellscript", "source.shell", `shell|sh|bash|zsh|bashrc|bash_profile|bash_login|profile|bash_logout|.textmate_init|\{\.bash.+?\}`, ""},
	{"typescript", "source.ts", "typescript|ts", ""},
	{"typescriptreact", "source.tsx", "tsx", ""},
	{"csharp", "source.cs", "cs|csharp|c#", ""},
	{"fsharp", "source.fsharp", "fs|fsharp|f#", ""},
	{"dart", "source.dart", "dart", ""},
	{"handlebars", "text.html.handlebars", "handlebars|hbs", ""},
	{"markdown", "text.html.markdown", "markdown|md", ""},
	{"log", "text.log", "log", ""},
	{"erlang", "source.erlang", "erlang", ""},
	{"elixir", "source.elixir", "elixir", ""},
	{"latex", "text.tex.latex", "latex|tex", ""},
	{"bibtex", "text.bibtex", "bibtex", ""},
	{"twig", "source.twig", "twig", ""},

	{"reaper", "source.txt", "reaper", ""}, // vscode-reaper-theme
	{"rhai", "source.rhai", "rhai", ""}, // vscode-rhai
	{"toml", "source.toml", "toml", ""}, // even-better-toml
}

// Labels returns the global label table in its fixed order.
func Labels() []Label {
	return append([]Label(nil), labels...)
}

// LabelByID looks up a label.
func LabelByID(id string) (Label, bool) {
	for _, label := range labels {
		if label.ID == id {
			return label, true
		}
	}
	return Label{}, false
}
