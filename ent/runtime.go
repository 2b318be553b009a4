// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"kolekta.io/kolekta/ent/activity"
	"kolekta.io/kolekta/ent/educationalcontent"
	"kolekta.io/kolekta/ent/feedback"
	"kolekta.io/kolekta/ent/notification"
	"kolekta.io/kolekta/ent/report"
	"kolekta.io/kolekta/ent/reportstatus"
	"kolekta.io/kolekta/ent/resident"
	"kolekta.io/kolekta/ent/schedule"
	"kolekta.io/kolekta/ent/schema"
	"kolekta.io/kolekta/ent/smsmessage"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityMixin := schema.Activity{}.Mixin()
	activityMixinFields0 := activityMixin[0].Fields()
	_ = activityMixinFields0
	activityFields := schema.Activity{}.Fields()
	_ = activityFields
	// activityDescCreatedAt is the schema descriptor for created_at field.
	activityDescCreatedAt := activityMixinFields0[0].Descriptor()
	// activity.DefaultCreatedAt holds the default value on creation for the created_at field.
	activity.DefaultCreatedAt = activityDescCreatedAt.Default.(func() time.Time)
	// activityDescAction is the schema descriptor for action field.
	activityDescAction := activityFields[2].Descriptor()
	// activity.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	activity.ActionValidator = activityDescAction.Validators[0].(func(string) error)
	educationalcontentMixin := schema.EducationalContent{}.Mixin()
	educationalcontentMixinFields0 := educationalcontentMixin[0].Fields()
	_ = educationalcontentMixinFields0
	educationalcontentFields := schema.EducationalContent{}.Fields()
	_ = educationalcontentFields
	// educationalcontentDescCreatedAt is the schema descriptor for created_at field.
	educationalcontentDescCreatedAt := educationalcontentMixinFields0[0].Descriptor()
	// educationalcontent.DefaultCreatedAt holds the default value on creation for the created_at field.
	educationalcontent.DefaultCreatedAt = educationalcontentDescCreatedAt.Default.(func() time.Time)
	// educationalcontentDescUpdatedAt is the schema descriptor for updated_at field.
	educationalcontentDescUpdatedAt := educationalcontentMixinFields0[1].Descriptor()
	// educationalcontent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	educationalcontent.DefaultUpdatedAt = educationalcontentDescUpdatedAt.Default.(func() time.Time)
	// educationalcontent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	educationalcontent.UpdateDefaultUpdatedAt = educationalcontentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// educationalcontentDescTitle is the schema descriptor for title field.
	educationalcontentDescTitle := educationalcontentFields[1].Descriptor()
	// educationalcontent.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	educationalcontent.TitleValidator = func() func(string) error {
		validators := educationalcontentDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// educationalcontentDescBody is the schema descriptor for body field.
	educationalcontentDescBody := educationalcontentFields[2].Descriptor()
	// educationalcontent.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	educationalcontent.BodyValidator = educationalcontentDescBody.Validators[0].(func(string) error)
	// educationalcontentDescPublished is the schema descriptor for published field.
	educationalcontentDescPublished := educationalcontentFields[4].Descriptor()
	// educationalcontent.DefaultPublished holds the default value on creation for the published field.
	educationalcontent.DefaultPublished = educationalcontentDescPublished.Default.(bool)
	feedbackMixin := schema.Feedback{}.Mixin()
	feedbackMixinFields0 := feedbackMixin[0].Fields()
	_ = feedbackMixinFields0
	feedbackFields := schema.Feedback{}.Fields()
	_ = feedbackFields
	// feedbackDescCreatedAt is the schema descriptor for created_at field.
	feedbackDescCreatedAt := feedbackMixinFields0[0].Descriptor()
	// feedback.DefaultCreatedAt holds the default value on creation for the created_at field.
	feedback.DefaultCreatedAt = feedbackDescCreatedAt.Default.(func() time.Time)
	// feedbackDescUpdatedAt is the schema descriptor for updated_at field.
	feedbackDescUpdatedAt := feedbackMixinFields0[1].Descriptor()
	// feedback.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	feedback.DefaultUpdatedAt = feedbackDescUpdatedAt.Default.(func() time.Time)
	// feedback.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	feedback.UpdateDefaultUpdatedAt = feedbackDescUpdatedAt.UpdateDefault.(func() time.Time)
	// feedbackDescReportID is the schema descriptor for report_id field.
	feedbackDescReportID := feedbackFields[1].Descriptor()
	// feedback.ReportIDValidator is a validator for the "report_id" field. It is called by the builders before save.
	feedback.ReportIDValidator = feedbackDescReportID.Validators[0].(func(string) error)
	// feedbackDescResidentID is the schema descriptor for resident_id field.
	feedbackDescResidentID := feedbackFields[2].Descriptor()
	// feedback.ResidentIDValidator is a validator for the "resident_id" field. It is called by the builders before save.
	feedback.ResidentIDValidator = feedbackDescResidentID.Validators[0].(func(string) error)
	// feedbackDescRating is the schema descriptor for rating field.
	feedbackDescRating := feedbackFields[3].Descriptor()
	// feedback.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	feedback.RatingValidator = feedbackDescRating.Validators[0].(func(int) error)
	// feedbackDescComment is the schema descriptor for comment field.
	feedbackDescComment := feedbackFields[4].Descriptor()
	// feedback.CommentValidator is a validator for the "comment" field. It is called by the builders before save.
	feedback.CommentValidator = feedbackDescComment.Validators[0].(func(string) error)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescUpdatedAt is the schema descriptor for updated_at field.
	notificationDescUpdatedAt := notificationMixinFields0[1].Descriptor()
	// notification.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notification.DefaultUpdatedAt = notificationDescUpdatedAt.Default.(func() time.Time)
	// notification.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notification.UpdateDefaultUpdatedAt = notificationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// notificationDescUserID is the schema descriptor for user_id field.
	notificationDescUserID := notificationFields[1].Descriptor()
	// notification.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	notification.UserIDValidator = notificationDescUserID.Validators[0].(func(string) error)
	// notificationDescReportID is the schema descriptor for report_id field.
	notificationDescReportID := notificationFields[2].Descriptor()
	// notification.ReportIDValidator is a validator for the "report_id" field. It is called by the builders before save.
	notification.ReportIDValidator = notificationDescReportID.Validators[0].(func(string) error)
	// notificationDescMessage is the schema descriptor for message field.
	notificationDescMessage := notificationFields[3].Descriptor()
	// notification.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	notification.MessageValidator = func() func(string) error {
		validators := notificationDescMessage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(message string) error {
			for _, fn := range fns {
				if err := fn(message); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// notificationDescStatus is the schema descriptor for status field.
	notificationDescStatus := notificationFields[4].Descriptor()
	// notification.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	notification.StatusValidator = notificationDescStatus.Validators[0].(func(string) error)
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[5].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	reportMixin := schema.Report{}.Mixin()
	reportMixinFields0 := reportMixin[0].Fields()
	_ = reportMixinFields0
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportMixinFields0[0].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	// reportDescUpdatedAt is the schema descriptor for updated_at field.
	reportDescUpdatedAt := reportMixinFields0[1].Descriptor()
	// report.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	report.DefaultUpdatedAt = reportDescUpdatedAt.Default.(func() time.Time)
	// report.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	report.UpdateDefaultUpdatedAt = reportDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reportDescUserID is the schema descriptor for user_id field.
	reportDescUserID := reportFields[1].Descriptor()
	// report.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	report.UserIDValidator = reportDescUserID.Validators[0].(func(string) error)
	// reportDescTitle is the schema descriptor for title field.
	reportDescTitle := reportFields[2].Descriptor()
	// report.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	report.TitleValidator = func() func(string) error {
		validators := reportDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportDescDescription is the schema descriptor for description field.
	reportDescDescription := reportFields[3].Descriptor()
	// report.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	report.DescriptionValidator = func() func(string) error {
		validators := reportDescDescription.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(description string) error {
			for _, fn := range fns {
				if err := fn(description); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reportDescStatus is the schema descriptor for status field.
	reportDescStatus := reportFields[7].Descriptor()
	// report.DefaultStatus holds the default value on creation for the status field.
	report.DefaultStatus = reportDescStatus.Default.(string)
	reportstatusMixin := schema.ReportStatus{}.Mixin()
	reportstatusMixinFields0 := reportstatusMixin[0].Fields()
	_ = reportstatusMixinFields0
	reportstatusFields := schema.ReportStatus{}.Fields()
	_ = reportstatusFields
	// reportstatusDescCreatedAt is the schema descriptor for created_at field.
	reportstatusDescCreatedAt := reportstatusMixinFields0[0].Descriptor()
	// reportstatus.DefaultCreatedAt holds the default value on creation for the created_at field.
	reportstatus.DefaultCreatedAt = reportstatusDescCreatedAt.Default.(func() time.Time)
	// reportstatusDescUpdatedAt is the schema descriptor for updated_at field.
	reportstatusDescUpdatedAt := reportstatusMixinFields0[1].Descriptor()
	// reportstatus.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reportstatus.DefaultUpdatedAt = reportstatusDescUpdatedAt.Default.(func() time.Time)
	// reportstatus.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reportstatus.UpdateDefaultUpdatedAt = reportstatusDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reportstatusDescReportID is the schema descriptor for report_id field.
	reportstatusDescReportID := reportstatusFields[1].Descriptor()
	// reportstatus.ReportIDValidator is a validator for the "report_id" field. It is called by the builders before save.
	reportstatus.ReportIDValidator = reportstatusDescReportID.Validators[0].(func(string) error)
	residentMixin := schema.Resident{}.Mixin()
	residentMixinFields0 := residentMixin[0].Fields()
	_ = residentMixinFields0
	residentFields := schema.Resident{}.Fields()
	_ = residentFields
	// residentDescCreatedAt is the schema descriptor for created_at field.
	residentDescCreatedAt := residentMixinFields0[0].Descriptor()
	// resident.DefaultCreatedAt holds the default value on creation for the created_at field.
	resident.DefaultCreatedAt = residentDescCreatedAt.Default.(func() time.Time)
	// residentDescUpdatedAt is the schema descriptor for updated_at field.
	residentDescUpdatedAt := residentMixinFields0[1].Descriptor()
	// resident.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	resident.DefaultUpdatedAt = residentDescUpdatedAt.Default.(func() time.Time)
	// resident.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	resident.UpdateDefaultUpdatedAt = residentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// residentDescUsername is the schema descriptor for username field.
	residentDescUsername := residentFields[1].Descriptor()
	// resident.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	resident.UsernameValidator = func() func(string) error {
		validators := residentDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// residentDescEmail is the schema descriptor for email field.
	residentDescEmail := residentFields[2].Descriptor()
	// resident.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	resident.EmailValidator = residentDescEmail.Validators[0].(func(string) error)
	// residentDescPhone is the schema descriptor for phone field.
	residentDescPhone := residentFields[6].Descriptor()
	// resident.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	resident.PhoneValidator = residentDescPhone.Validators[0].(func(string) error)
	// residentDescEnabled is the schema descriptor for enabled field.
	residentDescEnabled := residentFields[7].Descriptor()
	// resident.DefaultEnabled holds the default value on creation for the enabled field.
	resident.DefaultEnabled = residentDescEnabled.Default.(bool)
	smsmessageMixin := schema.SMSMessage{}.Mixin()
	smsmessageMixinFields0 := smsmessageMixin[0].Fields()
	_ = smsmessageMixinFields0
	smsmessageFields := schema.SMSMessage{}.Fields()
	_ = smsmessageFields
	// smsmessageDescCreatedAt is the schema descriptor for created_at field.
	smsmessageDescCreatedAt := smsmessageMixinFields0[0].Descriptor()
	// smsmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	smsmessage.DefaultCreatedAt = smsmessageDescCreatedAt.Default.(func() time.Time)
	// smsmessageDescUpdatedAt is the schema descriptor for updated_at field.
	smsmessageDescUpdatedAt := smsmessageMixinFields0[1].Descriptor()
	// smsmessage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	smsmessage.DefaultUpdatedAt = smsmessageDescUpdatedAt.Default.(func() time.Time)
	// smsmessage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	smsmessage.UpdateDefaultUpdatedAt = smsmessageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// smsmessageDescRecipientGroup is the schema descriptor for recipient_group field.
	smsmessageDescRecipientGroup := smsmessageFields[1].Descriptor()
	// smsmessage.RecipientGroupValidator is a validator for the "recipient_group" field. It is called by the builders before save.
	smsmessage.RecipientGroupValidator = smsmessageDescRecipientGroup.Validators[0].(func(string) error)
	// smsmessageDescBody is the schema descriptor for body field.
	smsmessageDescBody := smsmessageFields[4].Descriptor()
	// smsmessage.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	smsmessage.BodyValidator = func() func(string) error {
		validators := smsmessageDescBody.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(body string) error {
			for _, fn := range fns {
				if err := fn(body); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// smsmessageDescArchived is the schema descriptor for archived field.
	smsmessageDescArchived := smsmessageFields[9].Descriptor()
	// smsmessage.DefaultArchived holds the default value on creation for the archived field.
	smsmessage.DefaultArchived = smsmessageDescArchived.Default.(bool)
	scheduleMixin := schema.Schedule{}.Mixin()
	scheduleMixinFields0 := scheduleMixin[0].Fields()
	_ = scheduleMixinFields0
	scheduleFields := schema.Schedule{}.Fields()
	_ = scheduleFields
	// scheduleDescCreatedAt is the schema descriptor for created_at field.
	scheduleDescCreatedAt := scheduleMixinFields0[0].Descriptor()
	// schedule.DefaultCreatedAt holds the default value on creation for the created_at field.
	schedule.DefaultCreatedAt = scheduleDescCreatedAt.Default.(func() time.Time)
	// scheduleDescUpdatedAt is the schema descriptor for updated_at field.
	scheduleDescUpdatedAt := scheduleMixinFields0[1].Descriptor()
	// schedule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	schedule.DefaultUpdatedAt = scheduleDescUpdatedAt.Default.(func() time.Time)
	// schedule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	schedule.UpdateDefaultUpdatedAt = scheduleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// scheduleDescPurok is the schema descriptor for purok field.
	scheduleDescPurok := scheduleFields[1].Descriptor()
	// schedule.PurokValidator is a validator for the "purok" field. It is called by the builders before save.
	schedule.PurokValidator = func() func(string) error {
		validators := scheduleDescPurok.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(purok string) error {
			for _, fn := range fns {
				if err := fn(purok); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// scheduleDescDay is the schema descriptor for day field.
	scheduleDescDay := scheduleFields[3].Descriptor()
	// schedule.DayValidator is a validator for the "day" field. It is called by the builders before save.
	schedule.DayValidator = scheduleDescDay.Validators[0].(func(string) error)
	// scheduleDescDate is the schema descriptor for date field.
	scheduleDescDate := scheduleFields[4].Descriptor()
	// schedule.DateValidator is a validator for the "date" field. It is called by the builders before save.
	schedule.DateValidator = scheduleDescDate.Validators[0].(func(string) error)
	// scheduleDescStartTime is the schema descriptor for start_time field.
	scheduleDescStartTime := scheduleFields[5].Descriptor()
	// schedule.StartTimeValidator is a validator for the "start_time" field. It is called by the builders before save.
	schedule.StartTimeValidator = scheduleDescStartTime.Validators[0].(func(string) error)
	// scheduleDescEndTime is the schema descriptor for end_time field.
	scheduleDescEndTime := scheduleFields[6].Descriptor()
	// schedule.EndTimeValidator is a validator for the "end_time" field. It is called by the builders before save.
	schedule.EndTimeValidator = scheduleDescEndTime.Validators[0].(func(string) error)
}
