// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/curityio/idsvr-aws/internal/pkg/ami"
	"github.com/curityio/idsvr-aws/internal/pkg/aws/ec2"
	"github.com/curityio/idsvr-aws/internal/pkg/aws/sessions"
	"github.com/curityio/idsvr-aws/internal/pkg/cli/group"
	"github.com/curityio/idsvr-aws/internal/pkg/term/color"
	"github.com/curityio/idsvr-aws/internal/pkg/term/log"
	"github.com/curityio/idsvr-aws/internal/pkg/term/spinner"
)

const (
	amiLookupTimeout = 30 * time.Second

	fmtAMILookupStart    = "Looking up the latest image named %s."
	fmtAMILookupFailed   = "Failed to look up the latest image named %s."
	fmtAMILookupComplete = "Found the latest image named %s."
)

type amiVars struct {
	namePattern  string
	ownerID      string
	architecture string
	region       string
}

type amiOpts struct {
	amiVars

	sessProvider sessionProvider
	newResolver  func(sess *session.Session) imageResolver
	prog         progress
	now          func() time.Time
	w            io.Writer
}

func newAMIOpts(vars amiVars) *amiOpts {
	return &amiOpts{
		amiVars:      vars,
		sessProvider: sessions.NewProvider(),
		newResolver: func(sess *session.Session) imageResolver {
			return ami.NewResolver(ec2.New(sess))
		},
		prog: spinner.New(log.DiagnosticWriter),
		now:  time.Now,
		w:    log.OutputWriter,
	}
}

// Validate returns an error if the values passed by flags are invalid.
func (o *amiOpts) Validate() error {
	return o.request().Validate()
}

// Ask is a no-op, every search criterion has a default.
func (o *amiOpts) Ask() error {
	return nil
}

// Execute queries the image catalog and writes the newest matching image.
func (o *amiOpts) Execute() error {
	sess, err := o.session()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), amiLookupTimeout)
	defer cancel()

	o.prog.Start(fmt.Sprintf(fmtAMILookupStart, color.HighlightUserInput(o.namePattern)))
	img, err := o.newResolver(sess).Latest(ctx, o.request())
	if err != nil {
		o.prog.Stop(log.Serrorf(fmtAMILookupFailed, color.HighlightUserInput(o.namePattern)))
		return err
	}
	o.prog.Stop(log.Ssuccessf(fmtAMILookupComplete, color.HighlightUserInput(o.namePattern)))

	created := "unknown"
	if !img.CreationTime.IsZero() {
		created = humanize.RelTime(img.CreationTime, o.now(), "ago", "from now")
	}
	fmt.Fprintf(o.w, "%s\t%s\tcreated %s\n", img.ID, img.Name, created)
	return nil
}

func (o *amiOpts) request() ami.Request {
	return ami.Request{
		NamePattern:  o.namePattern,
		OwnerID:      o.ownerID,
		Architecture: o.architecture,
		Region:       o.region,
	}
}

func (o *amiOpts) session() (*session.Session, error) {
	if o.region != "" {
		return o.sessProvider.DefaultWithRegion(o.region)
	}
	return o.sessProvider.Default()
}

// BuildAMICmd builds the command for looking up the latest product image.
func BuildAMICmd() *cobra.Command {
	vars := amiVars{}
	cmd := &cobra.Command{
		Use:   "ami",
		Short: "Look up the latest product image.",
		Long: `Look up the latest product image.
Uses the same search as the custom resource that picks the image during a deployment.`,
		Example: `
  Look up the latest image in the region of your default profile.
  /code $ idsvr ami
  Look up the latest arm64 image in eu-west-1.
  /code $ idsvr ami --arch arm64 --region eu-west-1`,
		RunE: runCmdE(func(cmd *cobra.Command, args []string) error {
			return run(newAMIOpts(vars))
		}),
	}
	cmd.Flags().StringVarP(&vars.namePattern, nameFlag, nameFlagShort, ami.DefaultNamePattern, nameFlagDescription)
	cmd.Flags().StringVar(&vars.ownerID, ownerFlag, ami.DefaultOwnerID, ownerFlagDescription)
	cmd.Flags().StringVar(&vars.architecture, archFlag, ami.DefaultArchitecture, archFlagDescription)
	cmd.Flags().StringVar(&vars.region, regionFlag, "", regionFlagDescription)
	cmd.Annotations = map[string]string{
		"group": group.Release,
	}
	return cmd
}
