package cmd

import (
	"fmt"
	"os"

	"github.com/pranav244872/resumecoach/classifier"
	"github.com/pranav244872/resumecoach/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	trainData string
	trainOut  string
	trainOpts = classifier.DefaultTrainOptions()
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Fit the resume vectorizer and classifier from a labelled CSV",
	RunE: func(cmd *cobra.Command, _ []string) error {
		log, err := logger.New(jsonLogs, debug)
		if err != nil {
			return err
		}
		defer log.Sync()

		return train(log, trainData, trainOut, trainOpts)
	},
}

func init() {
	trainCmd.Flags().StringVar(&trainData, "data", "resumes.csv", "CSV with resume_text and selected columns")
	trainCmd.Flags().StringVar(&trainOut, "out", "model.json", "where to write the model artifact")
	trainCmd.Flags().Float64Var(&trainOpts.C, "c", trainOpts.C, "inverse regularisation strength")
	trainCmd.Flags().IntVar(&trainOpts.MaxIter, "max-iter", trainOpts.MaxIter, "maximum gradient descent iterations")
	rootCmd.AddCommand(trainCmd)
}

func train(log *zap.Logger, dataPath, outPath string, opts classifier.TrainOptions) error {
	f, err := os.Open(dataPath)
	if err != nil {
		return fmt.Errorf("open training data: %w", err)
	}
	defer f.Close()

	samples, err := classifier.ReadSamples(f)
	if err != nil {
		return err
	}
	log.Info("training samples loaded", zap.String("path", dataPath), zap.Int("count", len(samples)))

	model, err := classifier.Train(samples, opts)
	if err != nil {
		return fmt.Errorf("train model: %w", err)
	}

	if err := model.Save(outPath); err != nil {
		return err
	}
	log.Info("model saved",
		zap.String("path", outPath),
		zap.Int("features", model.Vectorizer.Features()),
	)
	return nil
}
