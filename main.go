package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/androidprep/guideutil/book"
	"github.com/androidprep/guideutil/config"
	"github.com/androidprep/guideutil/dbmodels"
	"github.com/androidprep/guideutil/guidefmt"
	"github.com/androidprep/guideutil/guideuri"
	"github.com/androidprep/guideutil/htmlfmt"
	"github.com/androidprep/guideutil/jekyll"
	"github.com/androidprep/guideutil/site"
	"github.com/androidprep/guideutil/snippets"
	"github.com/androidprep/guideutil/syncserver"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	convertCmd        = kingpin.Command("convert", "Convert a guide from one supported format to another")
	convertForce      = convertCmd.Flag("force", "Ignore if the destination already exists, just write the files/folders").Default("false").Bool()
	convertFromFormat = convertCmd.Flag("from-format", "The source format to convert from").Required().String()
	convertFromURI    = convertCmd.Flag("from-uri", "The URI to the source").Required().String()
	convertToFormat   = convertCmd.Flag("to-format", "The destination format to convert to").Required().String()
	convertToURI      = convertCmd.Flag("to-uri", "The destination URI").Required().String()
	verifyCmd         = kingpin.Command("verify", "Check that a guide conforms to a supported format and its editorial invariants hold")
	verifyFormat      = verifyCmd.Flag("format", "The format to which the guide should conform to").Default("jekyll").String()
	verifyURI         = verifyCmd.Flag("uri", "The URI of the source of the guide").Required().String()
	indexCmd          = kingpin.Command("index", "Build the aggregated questions index for a guide")
	indexURI          = indexCmd.Flag("uri", "The URI of the source of the guide").Required().String()
	indexOut          = indexCmd.Flag("out", "Output path, use - for stdout").Default("").String()
	pushCmd           = kingpin.Command("push", "Upsert a guide into MongoDB")
	pushURI           = pushCmd.Flag("uri", "The URI of the source of the guide").Required().String()
	pushMongoURI      = pushCmd.Flag("mongo-uri", "The MongoDB connection URI").Required().String()
	pushDBName        = pushCmd.Flag("db", "The MongoDB database name").Default("guides_dev").String()
	snippetsCmd       = kingpin.Command("snippets", "Extract fenced code blocks from answers into a snippet workspace")
	snippetsURI       = snippetsCmd.Flag("uri", "The URI of the source of the guide").Required().String()
	snippetsOutDir    = snippetsCmd.Flag("out-dir", "The destination directory for the snippet tree").Required().String()
	snippetsForce     = snippetsCmd.Flag("force", "Remove the destination directory first if it exists").Default("false").Bool()
	serveSyncCmd      = kingpin.Command("serve-sync", "Run the webhook server that regenerates the index on guide repo pushes")
)

var Log = config.Cfg().GetLogger()

func init() {
	guidefmt.RegisterExtFmt("jekyll", jekyll.NewJekyllFormat())
	guidefmt.RegisterExtFmt("html", htmlfmt.NewHTMLFormat())
	guidefmt.RegisterExtFmt("site", site.NewSiteFormat())
	guidefmt.RegisterExtFmt("book", book.NewBookFormat())
}

func main() {
	kingpin.UsageTemplate(kingpin.CompactUsageTemplate).Version("0.1").Author("androidprep")
	kingpin.CommandLine.Help = "Interview Guide Content - Utilities"
	switch kingpin.Parse() {
	case "convert":
		Log.Info("Importing guide for conversion ...")
		g, err := getExtFmtF(*convertFromFormat).Import(verifyAndCleanURIF(*convertFromURI))
		if err != nil {
			Log.Fatalf("Guide import failed with: %s", err.Error())
		}
		Log.Infof("Successfully imported guide %s for conversion, now exporting ...", g.GetTitle())
		err = getExtFmtF(*convertToFormat).Export(g, verifyAndCleanURIF(*convertToURI), *convertForce)
		if err != nil {
			Log.Fatalf("Guide export failed with: %s", err.Error())
		}
		Log.Infof("Successfully exported guide: %s", g.GetTitle())
	case "verify":
		Log.Info("Importing guide for verification ...")
		g, err := getExtFmtF(*verifyFormat).Import(verifyAndCleanURIF(*verifyURI))
		if err != nil {
			Log.Fatalf("Guide import verification failed with: %s", err.Error())
		}
		issues := jekyll.VerifyGuide(g)
		for _, issue := range issues {
			if issue.Severity == jekyll.SeverityError {
				Log.Error(issue.String())
			} else {
				Log.Warn(issue.String())
			}
		}
		if jekyll.HasErrors(issues) {
			Log.Fatalf("Guide verification failed with %d issue(s)", len(issues))
		}
		Log.Infof("Successfully verified guide: %s", g.GetTitle())
	case "index":
		g, err := getExtFmtF("jekyll").Import(verifyAndCleanURIF(*indexURI))
		if err != nil {
			Log.Fatalf("Guide import failed with: %s", err.Error())
		}
		contents := jekyll.BuildQuestionsIndex(g)
		if *indexOut == "-" {
			fmt.Print(contents)
			return
		}
		outPath := *indexOut
		if outPath == "" {
			rootDir, err := guideuri.GetAbsolutePathFromFileURI(verifyAndCleanURIF(*indexURI))
			if err != nil {
				Log.Fatalf("invalid uri: %s", err.Error())
			}
			outPath = filepath.Join(rootDir, jekyll.IndexFileName)
		}
		err = ioutil.WriteFile(outPath, []byte(contents), 0644)
		if err != nil {
			Log.Fatalf("Questions index write failed with: %s", err.Error())
		}
		Log.Infof("Successfully wrote questions index: %s", outPath)
	case "push":
		g, err := getExtFmtF("jekyll").Import(verifyAndCleanURIF(*pushURI))
		if err != nil {
			Log.Fatalf("Guide import failed with: %s", err.Error())
		}
		err = dbmodels.PushGuide(g, *pushMongoURI, *pushDBName)
		if err != nil {
			Log.Fatalf("Guide push failed with: %s", err.Error())
		}
		Log.Infof("Successfully pushed guide: %s", g.GetTitle())
	case "snippets":
		g, err := getExtFmtF("jekyll").Import(verifyAndCleanURIF(*snippetsURI))
		if err != nil {
			Log.Fatalf("Guide import failed with: %s", err.Error())
		}
		if *snippetsForce {
			if err := os.RemoveAll(*snippetsOutDir); err != nil {
				Log.Fatalf("Could not clear snippet destination: %s", err.Error())
			}
		}
		ws := snippets.FromGuide(g)
		err = ws.Materialize(*snippetsOutDir)
		if err != nil {
			Log.Fatalf("Snippet extraction failed with: %s", err.Error())
		}
		Log.Infof("Successfully extracted snippets into: %s", *snippetsOutDir)
	case "serve-sync":
		syncserver.ServeSync()
	default:
		Log.Fatal("Unknown command")
	}
}

func getExtFmtF(key string) guidefmt.ExtFmt {
	impl := guidefmt.GetImplementation(key)
	if impl == nil {
		Log.Fatalf(fmt.Sprintf("invalid format type: %s", key))
	}
	return impl
}

func verifyAndCleanURIF(uri string) string {
	var err error
	uri, err = guideuri.VerifyAndClean(uri)
	if err != nil {
		Log.Fatalf("invalid uri: %s", err.Error())
	}
	return uri
}
