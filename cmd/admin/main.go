package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"

	"github.com/opsfront/intake-backend/conf"
	"github.com/opsfront/intake-backend/csvexport"
	"github.com/opsfront/intake-backend/intake"
	"github.com/opsfront/intake-backend/intake/intakeddb"
	"github.com/opsfront/intake-backend/intake/intakes3"
	"github.com/opsfront/intake-backend/intake/intakesrvc"
	"github.com/opsfront/intake-backend/notifsrvc"
	"github.com/opsfront/intake-backend/s3bucket"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "intake",
		Short: "Staff CLI for the intake backend",
	}

	var status string
	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List submissions, newest first",
		Run: func(cmd *cobra.Command, args []string) {
			subms, err := listSubms(status)
			if err != nil {
				log.Fatal(err)
			}
			for _, subm := range subms {
				notes := subm.Notes
				if notes != "" {
					notes = " // " + notes
				}
				fmt.Printf("%s  %-9s  %s  %s <%s> (%s)%s\n",
					subm.SubmittedAt.Local().Format("2006-01-02 15:04"),
					subm.Status, subm.ID,
					subm.ContactInfo.Name, subm.ContactInfo.Email,
					subm.ProjectDetails.ProjectType, notes)
			}
		},
	}
	listCmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status [new, reviewed, responded]")

	var out string
	var gzipOut bool
	var uploadBucket string
	var exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export submissions as CSV",
		Run: func(cmd *cobra.Command, args []string) {
			if err := exportSubms(status, out, gzipOut, uploadBucket); err != nil {
				log.Fatal(err)
			}
		},
	}
	exportCmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status [new, reviewed, responded]")
	exportCmd.Flags().StringVarP(&out, "out", "o", "", "Output file (defaults to a dated filename, \"-\" for stdout)")
	exportCmd.Flags().BoolVar(&gzipOut, "gzip", false, "Compress the export with gzip")
	exportCmd.Flags().StringVar(&uploadBucket, "upload", "", "Also upload the export to this S3 bucket")

	var notes string
	var markCmd = &cobra.Command{
		Use:   "mark <id> <status>",
		Short: "Set the triage status (and notes) of a submission",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			if err := markSubm(args[0], args[1], notes); err != nil {
				log.Fatal(err)
			}
		},
	}
	markCmd.Flags().StringVarP(&notes, "notes", "n", "", "Staff notes to attach")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(markCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newSrvc() (*intakesrvc.IntakeSrvc, conf.Config, error) {
	_ = godotenv.Load()

	cfg, err := conf.Load(os.Getenv("INTAKE_CONFIG"))
	if err != nil {
		return nil, conf.Config{}, err
	}

	var repo intakesrvc.SubmRepo
	switch cfg.Store.Provider {
	case conf.StoreMemory:
		return nil, conf.Config{}, fmt.Errorf("the memory store holds no submissions outside the server process; configure dynamodb or s3")
	case conf.StoreDynamoDb:
		awsCfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(cfg.Store.Region))
		if err != nil {
			return nil, conf.Config{}, fmt.Errorf("unable to load SDK config: %w", err)
		}
		repo = intakeddb.NewDdbSubmTable(dynamodb.NewFromConfig(awsCfg), cfg.Store.DdbTable)
	case conf.StoreS3:
		repo, err = intakes3.NewS3SubmRepo(cfg.Store.Region, cfg.Store.S3Bucket, cfg.Store.S3Prefix)
		if err != nil {
			return nil, conf.Config{}, err
		}
	default:
		return nil, conf.Config{}, fmt.Errorf("unknown store provider %q", cfg.Store.Provider)
	}

	// the CLI never creates submissions, notifications stay in the log
	srvc := intakesrvc.NewIntakeSrvc(repo, notifsrvc.NewSlogSender(nil), cfg.AdminKey)
	return srvc, cfg, nil
}

func listSubms(status string) ([]intake.Submission, error) {
	srvc, cfg, err := newSrvc()
	if err != nil {
		return nil, err
	}
	return listFiltered(srvc, cfg, status)
}

func listFiltered(srvc *intakesrvc.IntakeSrvc, cfg conf.Config, status string) ([]intake.Submission, error) {
	subms, err := srvc.List(context.Background(), cfg.AdminKey)
	if err != nil {
		return nil, err
	}
	return filterByStatus(subms, status), nil
}

func filterByStatus(subms []intake.Submission, status string) []intake.Submission {
	if status == "" {
		return subms
	}
	filtered := make([]intake.Submission, 0, len(subms))
	for _, subm := range subms {
		if string(subm.Status) == status {
			filtered = append(filtered, subm)
		}
	}
	return filtered
}

func exportSubms(status string, out string, gzipOut bool, uploadBucket string) error {
	srvc, cfg, err := newSrvc()
	if err != nil {
		return err
	}
	subms, err := listFiltered(srvc, cfg, status)
	if err != nil {
		return err
	}

	content := []byte(csvexport.Export(subms))
	filename := csvexport.Filename(time.Now())
	mediaType := "text/csv"

	if gzipOut {
		content, err = gzipBytes(content)
		if err != nil {
			return err
		}
		filename += ".gz"
		mediaType = "application/gzip"
	}

	switch out {
	case "-":
		if _, err := os.Stdout.Write(content); err != nil {
			return err
		}
	case "":
		out = filename
		fallthrough
	default:
		if err := os.WriteFile(out, content, 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		log.Printf("Wrote %d submissions to %s", len(subms), out)
	}

	if uploadBucket != "" {
		bucket, err := s3bucket.NewS3Bucket(cfg.Store.Region, uploadBucket)
		if err != nil {
			return err
		}
		url, err := bucket.Upload(context.Background(), content, "exports/"+filename, mediaType)
		if err != nil {
			return err
		}
		log.Printf("Uploaded export to %s", url)
	}

	return nil
}

func gzipBytes(content []byte) ([]byte, error) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(content); err != nil {
		return nil, err
	}
	if err := gw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func markSubm(id string, status string, notes string) error {
	srvc, cfg, err := newSrvc()
	if err != nil {
		return err
	}

	subm, err := srvc.Update(context.Background(), cfg.AdminKey, intakesrvc.UpdateParams{
		ID:     id,
		Status: intake.Status(status),
		Notes:  notes,
	})
	if err != nil {
		return err
	}
	log.Printf("Submission %s is now %s", subm.ID, subm.Status)
	return nil
}
